package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/internal/store"
)

// NewCatalogFilterScreen opens a fuzzy picker over the open tasks.
// Selecting one jumps straight into its annotation flow.
func NewCatalogFilterScreen(tasks []store.Task) *PickerModal {
	items := make([]PickerItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, PickerItem{
			ID:    task.ID,
			Label: task.Title,
			Desc:  fmt.Sprintf("%s, reward %d", task.Type, task.Reward),
		})
	}
	return NewPickerModal("Find Task", "screen:catalog-filter", items, func(item PickerItem) tea.Msg {
		return core.OpenTaskMsg{TaskID: item.ID}
	})
}
