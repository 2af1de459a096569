package commands

import (
	"FoodTracker/internal/cli/api"
	"FoodTracker/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"
	"time"
)

// foodItem - то, что CLI показывает из ответа сервера.
type foodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ExpiryDate time.Time `json:"expiryDate"`
	UserID     string    `json:"userId"`
	Status     string    `json:"status"`
}

func printItems(items []foodItem) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items")
		return
	}
	tw := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEXPIRES\tSTATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.ID, it.Name, it.ExpiryDate.Format("2006-01-02 15:04"), it.Status)
	}
	_ = tw.Flush()
}

func decodeItems(body []byte) ([]foodItem, error) {
	var items []foodItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return items, nil
}

type pantryCmd struct{}

func (pantryCmd) Name() string        { return "pantry" }
func (pantryCmd) Description() string { return "List your items (active by default)" }
func (pantryCmd) Usage() string       { return "pantry [status]" }

func (pantryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	tok, err := requireToken(cfg)
	if err != nil {
		return err
	}
	u := endpoint(cfg, "addfood")
	if len(args) > 0 {
		u += "?status=" + url.QueryEscape(args[0])
	}
	resp, body, err := api.Do(ctx, http.MethodGet, u, nil, tok)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	items, err := decodeItems(body)
	if err != nil {
		return err
	}
	printItems(items)
	return nil
}

type pantryAddCmd struct{}

func (pantryAddCmd) Name() string        { return "pantry-add" }
func (pantryAddCmd) Description() string { return "Add an item to your pantry" }
func (pantryAddCmd) Usage() string       { return "pantry-add <name> <expiry YYYY-MM-DD>" }

func (pantryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	tok, err := requireToken(cfg)
	if err != nil {
		return err
	}
	payload := map[string]string{"name": args[0], "expiryDate": args[1]}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "addfood"), payload, tok)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp.StatusCode, body)
	}
	var it foodItem
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Added %s (id %s)\n", it.Name, it.ID)
	return nil
}

type pantryRmCmd struct{}

func (pantryRmCmd) Name() string        { return "pantry-rm" }
func (pantryRmCmd) Description() string { return "Delete an item from your pantry" }
func (pantryRmCmd) Usage() string       { return "pantry-rm <id>" }

func (pantryRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	tok, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.Do(ctx, http.MethodDelete, endpoint(cfg, "addfood", args[0]), nil, tok)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

type expiringCmd struct{}

func (expiringCmd) Name() string        { return "expiring" }
func (expiringCmd) Description() string { return "Shared items expiring within 7 days" }
func (expiringCmd) Usage() string       { return "expiring <userId>" }

func (expiringCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.Do(ctx, http.MethodGet, endpoint(cfg, "food", "expiring-soon", args[0]), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	items, err := decodeItems(body)
	if err != nil {
		return err
	}
	printItems(items)
	return nil
}

func init() {
	RegisterCmd(pantryCmd{})
	RegisterCmd(pantryAddCmd{})
	RegisterCmd(pantryRmCmd{})
	RegisterCmd(expiringCmd{})
}
