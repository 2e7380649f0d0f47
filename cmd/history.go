package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aallbrig/verse/constraint"
	"github.com/aallbrig/verse/history"
	"github.com/aallbrig/verse/menu"
)

func (a *app) runHistory(cmd *cobra.Command, inv *menu.Invocation) error {
	w := cmd.OutOrStdout()
	if a.cfg.NoHistory {
		fmt.Fprintln(w, "History is disabled (VERSE_NO_HISTORY).")
		return nil
	}
	store, err := history.Open(a.cfg.HistoryDir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if id, ok := inv.ValueNamed("delete"); ok {
		err := store.Delete(id)
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("no history entry %s", id)
		} else if err != nil {
			return fmt.Errorf("delete history entry: %w", err)
		}
		fmt.Fprintf(w, "Deleted %s.\n", id)
		return nil
	}

	if inv.FlagNamed("clear") {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(w, "History cleared.")
		return nil
	}

	limit, err := constraint.ParseInt(first(inv.ValueNamed("limit")))
	if err != nil {
		return fmt.Errorf("limit: %w", err)
	}
	entries, err := store.Recent(limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "(history is empty)")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s  verse %s\n", e.At.Local().Format(time.DateTime), e.ID, strings.Join(e.Argv, " "))
	}
	return nil
}
