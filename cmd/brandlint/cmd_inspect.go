package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"brandlint/internal/event"
	"brandlint/internal/report"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// listCmd prints an overview table of every event
var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List discovered events and their active windows",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	res, err := event.ValidateTree(cfg.Root, optionsFrom(cfg))
	if err != nil {
		return err
	}

	byName := make(map[string]event.Event, len(res.Events))
	for _, ev := range res.Events {
		byName[ev.Name] = ev
	}

	table := report.NewTable("EVENT", "WINDOW", "DESCRIPTION", "BANNERS", "ICONS")
	for _, name := range res.Report.Events() {
		ev, ok := byName[name]
		if !ok {
			table.AddRow(name, "invalid", "-", "-", "-")
			continue
		}
		table.AddRow(name,
			ev.Window(),
			fmt.Sprintf("%d chars", utf8.RuneCountInString(ev.Description)),
			strconv.Itoa(ev.Banners),
			strconv.Itoa(ev.ServerIcons))
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render(stdoutIsTerminal()))
	return nil
}

// showCmd previews one event the way the bot would present it
var showCmd = &cobra.Command{
	Use:   "show <event>",
	Short: "Render one event's metadata and description",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	name := args[0]
	data, err := os.ReadFile(filepath.Join(cfg.Root, name, cfg.MetaFile))
	if err != nil {
		return err
	}
	meta, err := event.ParseMeta(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.MetaFile, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", name, metaWindow(meta))

	rendered := meta.Body + "\n"
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80)); err == nil {
		if s, err := r.Render(meta.Body); err == nil {
			rendered = s
		}
	}
	fmt.Fprint(out, rendered)
	return nil
}

// metaWindow formats an event's active window for the show header. Events
// with an incomplete date pair render as "invalid", same as the list table.
func metaWindow(meta event.Meta) string {
	switch {
	case meta.Fallback != nil && *meta.Fallback:
		return "fallback"
	case meta.StartDate == "" || meta.EndDate == "":
		return "invalid"
	}
	return fmt.Sprintf("%s - %s", meta.StartDate, meta.EndDate)
}
