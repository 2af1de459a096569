package commands

import (
	"FoodTracker/internal/cli/api"
	"FoodTracker/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a user" }
func (registerCmd) Usage() string       { return "register <email> <uid> [password]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	payload := map[string]string{"email": args[0], "uid": args[1]}
	if len(args) > 2 {
		payload["password"] = args[2]
	}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "users"), payload, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusConflict:
		return errors.New("user with this email or uid already exists")
	default:
		return serverError(resp.StatusCode, body)
	}

	var u struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &u); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := authStore(cfg).SaveLogin(args[0]); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	fmt.Fprintf(Out, "Registered %s (id %s)\n", args[0], u.ID)
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Get a token and store it" }
func (loginCmd) Usage() string       { return "login <email> [password]" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	payload := map[string]string{"email": args[0]}
	if len(args) > 1 {
		payload["password"] = args[1]
	}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "jwt"), payload, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}

	var tr struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &tr); err != nil || tr.Token == "" {
		return errors.New("server returned no token")
	}
	store := authStore(cfg)
	if err := store.Save(tr.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := store.SaveLogin(args[0]); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, _ []string) error {
	if err := authStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server and login status" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	resp, body, err := api.Do(ctx, http.MethodGet, endpoint(cfg, ""), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	fmt.Fprintf(Out, "Server: %s (%s)\n", strings.TrimSpace(string(body)), cfg.ServerURL)

	store := authStore(cfg)
	tok, err := store.Load()
	if err != nil {
		fmt.Fprintln(Out, "Login: not logged in")
		return nil
	}
	email, _ := store.LoadLogin()
	fmt.Fprintf(Out, "Login: %s\n", tokenSummary(tok, email))
	return nil
}

// tokenSummary описывает токен без проверки подписи: секрета у клиента нет.
func tokenSummary(tok, fallbackEmail string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return fallbackEmail + " (unreadable token)"
	}
	who, _ := claims["email"].(string)
	if who == "" {
		who = fallbackEmail
	}
	if uid, _ := claims["userId"].(string); uid != "" {
		who += " [" + uid + "]"
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return who
	}
	if exp.Before(time.Now()) {
		return who + " (token expired " + exp.Format(time.RFC3339) + ")"
	}
	return who + " (token valid until " + exp.Format(time.RFC3339) + ")"
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(statusCmd{})
}
