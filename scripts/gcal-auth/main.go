// scripts/gcal-auth/main.go
//
// Issues a relay API key for a Google account without running the frontend.
//
// Usage:
//   go run ./scripts/gcal-auth
//
// It prints the Google consent URL for the configured OAuth client. Sign in, copy the
// "code" query parameter from the page Google redirects to, and paste it here. The code
// goes through the same login flow as POST /login/ against the configured database.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"gcal-relay/config"
	"gcal-relay/internal/auth"
	authSqlite "gcal-relay/internal/auth/repository/sqlite"
	authUC "gcal-relay/internal/auth/usecase"
	"gcal-relay/pkg/gauth"
	"gcal-relay/pkg/log"
	"gcal-relay/pkg/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	gcfg := gauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		CallbackURL:  cfg.Google.CallbackURL,
		TokenURI:     cfg.Google.TokenURI,
	}

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in with Google:")
	fmt.Println()
	fmt.Println(gauth.AuthCodeURL(gcfg, uuid.NewString()))
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the code parameter of the redirect URL and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	db, err := sqlite.Open(cfg.Database.Path, authSqlite.Schema)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	uc := authUC.New(authSqlite.New(db, logger), gauth.New(gcfg), logger)
	out, err := uc.Login(ctx, auth.LoginInput{Code: code})
	if err != nil {
		logger.Fatalf(ctx, "Login failed: %v", err)
	}

	fmt.Println()
	fmt.Println("API key:", out.Key)
	fmt.Println("Use it as: Authorization: Token", out.Key)
}
