package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"fiftysix/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// TableTokenRequest asks for a signed spectate or rejoin token.
type TableTokenRequest struct {
	Action  string `json:"action"`
	MatchID string `json:"match_id"`
	Seat    int    `json:"seat"`
}

// TableTokenResponse carries the signed token back to the client.
type TableTokenResponse struct {
	Token string `json:"token"`
}

func rpcTableToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("user id not found in context", 16)
	}

	var request TableTokenRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		return "", runtime.NewError("malformed table token request", 3)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["fiftysix_table_token_secret"]
	issuer := env["fiftysix_table_token_issuer"]
	if issuer == "" {
		issuer = "fiftysix"
	}
	if secret == "" {
		logger.Error("rpcTableToken: table token secret is not configured")
		return "", runtime.NewError("table tokens not configured", 13)
	}

	seat := request.Seat
	if request.Action == app.TableTokenActionSpectate {
		seat = -1
	}

	svc := app.NewTableTokenService(secret, issuer)
	token, err := svc.GenerateToken(userID, request.Action, request.MatchID, seat)
	if err != nil {
		logger.Warn("rpcTableToken [user:%s]: %v", userID, err)
		return "", runtime.NewError(err.Error(), 3)
	}

	b, err := json.Marshal(TableTokenResponse{Token: token})
	if err != nil {
		return "", runtime.NewError("failed to encode response", 13)
	}
	return string(b), nil
}
