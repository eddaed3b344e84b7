package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"v"}, Action: "jump", Description: "jump mode", Scopes: []string{"*"}},
		{Keys: []string{"left"}, Action: "pane-nav", Description: "pane prev", Scopes: []string{"*"}},
		{Keys: []string{"right"}, Action: "pane-nav", Description: "pane next", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: "pane-focus", Description: "focus pane", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: "table-down", Description: "row down", Scopes: []string{"pane:contribute:catalog"}},
		{Keys: []string{"k", "up"}, Action: "table-up", Description: "row up", Scopes: []string{"pane:contribute:catalog"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"f"}, Action: "open-catalog-filter", Description: "find task", Scopes: []string{"pane:contribute:*"}},
		{Keys: []string{"n"}, Action: "new-task", Description: "new task", Scopes: []string{"pane:client:*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "home", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "contribute", Scopes: []string{"*"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "client", Scopes: []string{"*"}},
		{Keys: []string{"4"}, Action: "switch-tab-4", Description: "admin", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:annotate", "screen:new-task", "screen:catalog-filter", "screen:command", "screen:jump-picker"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:catalog-filter", "screen:command", "screen:jump-picker"}},
	}
}
