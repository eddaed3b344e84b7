package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/internal/config"
	"crowdtrain/internal/database"
	"crowdtrain/internal/snapshot"
	"crowdtrain/internal/store"
	"crowdtrain/screens"
	"crowdtrain/tabs"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	st := store.New(snapshot.NewSQLite(db), cfg.Snapshot.Key)
	if err := st.Load(ctx, cfg.Identity.ContributorID, cfg.Identity.ContributorName); err != nil {
		// corrupted snapshots are replaced with fresh seed data
		log.Printf("warn: snapshot reset: %v", err)
	}

	identity := core.Identity{
		ContributorID:   cfg.Identity.ContributorID,
		ContributorName: cfg.Identity.ContributorName,
		ClientID:        cfg.Identity.ClientID,
	}

	allTabs := []core.Tab{
		tabs.NewHomeTab(),
		tabs.NewContributeTab(),
		tabs.NewClientTab(cfg.UI.DateFormat),
		tabs.NewAdminTab(),
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(appCommands(cfg))

	model := core.NewModel(allTabs, keys, commands, st, identity)
	wireModals(&model)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func wireModals(m *core.Model) {
	m.OpenCommandModal = func(m *core.Model, scope string) core.Screen {
		reg := m.CommandRegistry()
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := reg.Search(query, scope, m)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{
						ID: r.CommandID, Name: r.Name, Desc: r.Desc,
						Disabled: r.Disabled, Reason: r.Reason,
					})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	m.OpenJumpPickerModal = func(_ *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPickerScreen(targets)
	}
	m.OpenAnnotateModal = func(m *core.Model, taskID string) core.Screen {
		task, ok := m.Store.TaskByID(taskID)
		if !ok {
			m.SetError(fmt.Errorf("task %s not found", taskID))
			return nil
		}
		return screens.NewAnnotateScreen(m.Store, m.Identity, task)
	}
	m.OpenNewTaskModal = func(m *core.Model) core.Screen {
		return screens.NewNewTaskScreen(m.Store, m.Identity.ClientID)
	}
	m.OpenCatalogFilterModal = func(m *core.Model) core.Screen {
		return screens.NewCatalogFilterScreen(m.Store.OpenTasks())
	}
}

func appCommands(cfg config.Config) []core.Command {
	return []core.Command{
		{
			ID: "go-home", Name: "Go to Home", Description: "Switch to the home view",
			Scopes:  []string{"*"},
			Execute: func(m *core.Model) tea.Cmd { m.SwitchTabByID("home"); return nil },
		},
		{
			ID: "go-contribute", Name: "Go to Contribute", Description: "Browse the task catalog",
			Scopes:  []string{"*"},
			Execute: func(m *core.Model) tea.Cmd { m.SwitchTabByID("contribute"); return nil },
		},
		{
			ID: "go-client", Name: "Go to Client", Description: "Open the client console",
			Scopes:  []string{"*"},
			Execute: func(m *core.Model) tea.Cmd { m.SwitchTabByID("client"); return nil },
		},
		{
			ID: "go-admin", Name: "Go to Admin", Description: "Review aggregate stats",
			Scopes:  []string{"*"},
			Execute: func(m *core.Model) tea.Cmd { m.SwitchTabByID("admin"); return nil },
		},
		{
			ID: "new-task", Name: "New Task", Description: "Post a task as the demo client",
			Scopes:  []string{"*"},
			Execute: func(m *core.Model) tea.Cmd { return func() tea.Msg { return core.OpenNewTaskMsg{} } },
		},
		{
			ID: "save-settings", Name: "Save Settings", Description: "Write current settings to the config file",
			Scopes: []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				if err := config.Save(cfg); err != nil {
					return core.ErrorCmd(err)
				}
				return core.StatusCmd("Settings saved")
			},
		},
		{
			ID: "refresh", Name: "Refresh", Description: "Recompute counts and balances",
			Scopes: []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.RefreshData()
				return core.StatusCmd("Refreshed")
			},
		},
		{
			ID: "find-task", Name: "Find Task", Description: "Fuzzy-search open tasks",
			Scopes: []string{"*"},
			Disabled: func(m *core.Model) (bool, string) {
				if len(m.Store.OpenTasks()) == 0 {
					return true, "No open tasks"
				}
				return false, ""
			},
			Execute: func(m *core.Model) tea.Cmd {
				m.PushScreen(screens.NewCatalogFilterScreen(m.Store.OpenTasks()))
				return nil
			},
		},
	}
}
