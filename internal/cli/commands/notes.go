package commands

import (
	"FoodTracker/internal/cli/api"
	"FoodTracker/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type note struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	PostedBy   string    `json:"postedBy"`
	PostedDate time.Time `json:"postedDate"`
}

type notesCmd struct{}

func (notesCmd) Name() string        { return "notes" }
func (notesCmd) Description() string { return "List notes of an item, newest first" }
func (notesCmd) Usage() string       { return "notes <foodId>" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.Do(ctx, http.MethodGet, endpoint(cfg, "food", args[0], "notes"), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	var notes []note
	if err := json.Unmarshal(body, &notes); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(Out, "No notes")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(Out, "%s  %s: %s\n", n.PostedDate.Local().Format("2006-01-02 15:04"), n.PostedBy, n.Text)
	}
	return nil
}

type noteAddCmd struct{}

func (noteAddCmd) Name() string        { return "note-add" }
func (noteAddCmd) Description() string { return "Attach a note to a pantry item" }
func (noteAddCmd) Usage() string       { return "note-add <foodId> <postedBy> <text...>" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	payload := map[string]string{"postedBy": args[1], "text": strings.Join(args[2:], " ")}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "food", args[0], "notes"), payload, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp.StatusCode, body)
	}
	var n note
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Note added (id %s)\n", n.ID)
	return nil
}

func init() {
	RegisterCmd(notesCmd{})
	RegisterCmd(noteAddCmd{})
}
