package http

import "gcal-relay/internal/auth"

type loginReq struct {
	Code string `json:"code" form:"code"`
}

func (r loginReq) validate() error {
	if r.Code == "" {
		return errMissingCode
	}
	return nil
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Code: r.Code}
}

type loginResp struct {
	Key string `json:"key"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{Key: out.Key}
}
