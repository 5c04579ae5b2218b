package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blanc86/PDF-Merger/internal/domain"
)

func cmdScanInputs(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Scanner == nil {
			return scanDoneMsg{dir: deps.InputDir, err: errors.New("Scanner is nil")}
		}

		docs, err := deps.Scanner.Execute(deps.InputDir)
		return scanDoneMsg{dir: deps.InputDir, docs: docs, err: err}
	}
}

func cmdMerge(deps Deps, inputs []string) tea.Cmd {
	return func() tea.Msg {
		if deps.Merger == nil {
			return mergeDoneMsg{err: errors.New("Merger is nil")}
		}
		if deps.DefaultOutput == nil {
			return mergeDoneMsg{err: errors.New("DefaultOutput is nil")}
		}

		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}

		output := deps.DefaultOutput(time.Now())
		log.Info("tui.merge.start", "inputs", len(inputs), "output", output, "debug", deps.Debug)

		report, id, err := deps.Merger.Execute(context.Background(), domain.MergeJob{
			Inputs: inputs,
			Output: output,
		})
		if err != nil {
			log.Error("tui.merge.failed", "err", err)
		}
		return mergeDoneMsg{report: report, reportID: id, err: err}
	}
}
