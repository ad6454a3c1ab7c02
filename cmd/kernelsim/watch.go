package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/patrislav1/coop-sched/internal/demo"
)

func watchCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scenario.yaml>",
		Short: "Run a scenario with a live dashboard of task activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.LoadScenario(args[0])
			if err != nil {
				return err
			}
			log, err := demo.NewLogger(*verbose)
			if err != nil {
				return fmt.Errorf("kernelsim: building logger: %w", err)
			}
			defer log.Sync()

			m := newWatchModel(demo.NewRun(s, log))
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}

type stepMsg struct {
	more bool
	err  error
}

// watchModel is a bubbletea model that steps a demo.Run on a timer and
// renders each task's run count alongside a progress bar for the
// scenario's overall round budget.
type watchModel struct {
	run      *demo.Run
	names    []string
	bar      progress.Model
	err      error
	finished bool
}

func newWatchModel(r *demo.Run) watchModel {
	names := append([]string(nil), r.TaskNames()...)
	sort.Strings(names)
	return watchModel{
		run:   r,
		names: names,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return stepMsg{}
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case stepMsg:
		more, err := m.run.Step()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if !more {
			m.finished = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	title := lipgloss.NewStyle().Bold(true).Render("coop-sched — " + m.run.Name())
	out := title + "\n\n"
	out += m.bar.ViewAs(float64(m.run.Round()) / float64(max1(m.run.Total()))) + "\n\n"

	snap := m.run.Snapshot()
	for _, name := range m.names {
		line := fmt.Sprintf("%-16s runs=%-8d", name, snap.TaskRuns[name])
		if wm, ok := snap.TaskWatermark[name]; ok && len(snap.TaskWatermark) > 0 {
			line += fmt.Sprintf("watermark=%d", wm)
		}
		out += line + "\n"
	}
	out += "\n(q to quit)\n"
	return out
}

func max1(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
