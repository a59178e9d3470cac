package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/urfave/cli/v3"
)

// EmojiLookup resolves an emotion code id or name to its table entry.
func (r *Runner) EmojiLookup(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")

	if query == "" {
		return fmt.Errorf("%w: an emotion code id or name is required", shared.ErrMissingArgument)
	}

	r.track("emoji lookup")

	var entry emotion.Entry
	if id, err := strconv.Atoi(query); err == nil {
		if id < emotion.MinID || id > emotion.MaxID {
			return fmt.Errorf("%w: emotion code %d is outside [%d, %d]", shared.ErrInvalidArgument, id, emotion.MinID, emotion.MaxID)
		}
		entry = emotion.Lookup(id)
	} else {
		entry = emotion.Lookup(emotion.IDFor(query))
	}

	r.writePlain("%s  %s (code %d)\n", entry.Glyph, entry.Name, entry.ID)
	return nil
}

// EmojiList prints the full emotion code table.
func (r *Runner) EmojiList(ctx context.Context, cmd *cli.Command) error {
	r.track("emoji list")

	r.writePlainHeader("Emotion Codes")
	for _, entry := range emotion.Entries() {
		r.writePlain("%3d. %s  %s\n", entry.ID, entry.Glyph, entry.Name)
	}

	return nil
}
