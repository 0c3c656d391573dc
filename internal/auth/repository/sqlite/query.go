package sqlite

import (
	"strings"

	repo "gcal-relay/internal/auth/repository"
)

// buildGetOneUserQuery builds WHERE clause + args for GetOneUser.
func (r *implRepository) buildGetOneUserQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}

	return joinConditions(conditions), args
}

// buildGetOneSocialAccountQuery builds WHERE clause + args for GetOneSocialAccount.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneSocialAccountQuery(opt repo.GetOneSocialAccountOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Provider != "" {
		conditions = append(conditions, "provider = ?")
		args = append(args, opt.Provider)
	}
	if opt.UID != "" {
		conditions = append(conditions, "uid = ?")
		args = append(args, opt.UID)
	}

	return joinConditions(conditions), args
}

// joinConditions refuses to match everything when no filter was given.
func joinConditions(conditions []string) string {
	if len(conditions) == 0 {
		return "1=0"
	}
	return strings.Join(conditions, " AND ")
}
