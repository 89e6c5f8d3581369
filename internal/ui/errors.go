package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
	"gramcheck/internal/storage"
)

// ErrorViewer displays case failures in an interactive TUI
type ErrorViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config, st storage.Storage) *ErrorViewer {
	return &ErrorViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the failures of the last run in an interactive TUI
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No case failures found!")
		return nil
	}

	// Track resolved failures by index, seeded from the saved run
	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return ev.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := results.Details[index]
		name := failure.CaseName
		if name == "" {
			name = fmt.Sprintf("case %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Details {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error
	updateHeader := func() {
		headerView.SetText(failureHeaderText(len(results.Details), countUnresolved(), saveErr))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			detailsView.SetText(ev.formatFailureDetails(results.Details[index], index+1))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					saveErr = saveResolvedStatus()
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// failureHeaderText renders the viewer header line. A failed write of the
// resolved state is surfaced here so the toggle never diverges silently from
// the saved run.
func failureHeaderText(total, unresolved int, saveErr error) string {
	text := fmt.Sprintf(
		" Case Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
		total, unresolved,
	)
	if saveErr != nil {
		text += fmt.Sprintf("| [red]save failed: %v[white] ", saveErr)
	}
	return text
}

// formatFailureDetails formats a case failure for display using tview color tags
func (ev *ErrorViewer) formatFailureDetails(failure domain.CheckFailure, number int) string {
	var b strings.Builder

	name := failure.CaseName
	if name == "" {
		name = fmt.Sprintf("case %d", number)
	}
	fmt.Fprintf(&b, "[red]✗ Case: %s[white]\n\n", name)

	fmt.Fprintf(&b, "[cyan]Input:[white] %q\n", failure.Source)
	if len(failure.Expect) > 0 {
		fmt.Fprintf(&b, "[cyan]Expected labels:[white] %s\n", strings.Join(failure.Expect, ", "))
	}
	fmt.Fprintf(&b, "\n")

	switch {
	case failure.TimedOut:
		fmt.Fprintf(&b, "[yellow]Verdict:[white] parser timed out\n\n")
	case failure.ExitCode != 0:
		fmt.Fprintf(&b, "[yellow]Verdict:[white] parser exited with status %d\n\n", failure.ExitCode)
	case len(failure.Missing) > 0:
		fmt.Fprintf(&b, "[yellow]Missing labels:[white] %s\n\n", strings.Join(failure.Missing, ", "))
	}

	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", failure.Message)
	}

	if stderr := strings.TrimSpace(failure.Stderr); stderr != "" {
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n%s\n\n", stderr)
	}

	if out := strings.TrimSpace(failure.Output); out != "" {
		fmt.Fprintf(&b, "[yellow]Parse output:[white]\n%s\n", out)
	}

	return b.String()
}
