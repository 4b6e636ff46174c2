package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// viewTodos renders the to-do panel with the current member filter.
func (m Model) viewTodos() string {
	todos := m.store.TodosFor(m.memberID)

	var b strings.Builder
	who := "All Members"
	if mem, ok := m.store.Member(m.memberID); ok {
		who = mem.Name
	}
	open := 0
	for _, td := range todos {
		if !td.Completed {
			open++
		}
	}
	b.WriteString(styleTitle.Render("To-Do List") + styleDim.Render(fmt.Sprintf("  %s · %d left", who, open)) + "\n\n")

	if len(todos) == 0 {
		b.WriteString(styleDim.Render("No tasks for this selection.") + "\n")
	}
	for i, td := range todos {
		cursor := "  "
		if i == m.todoCursor {
			cursor = styleHeader.Render("> ")
		}
		mark := "[ ]"
		text := td.Text
		if td.Completed {
			mark = styleDone.Render("[x]")
			text = styleDim.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, text))
	}

	b.WriteByte('\n')
	if m.todoInput.Focused() {
		b.WriteString(m.todoInput.View() + "\n")
	}
	b.WriteString(styleDim.Render("a add · space toggle · x delete · f filter · esc back"))
	return b.String()
}

func (m Model) updateTodoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	todos := m.store.TodosFor(m.memberID)

	switch msg.String() {
	case "up", "k":
		if m.todoCursor > 0 {
			m.todoCursor--
		}
	case "down", "j":
		if m.todoCursor < len(todos)-1 {
			m.todoCursor++
		}
	case " ":
		if m.todoCursor < len(todos) {
			m.store.ToggleTodo(todos[m.todoCursor].ID)
		}
	case "x":
		if m.todoCursor < len(todos) {
			m.store.DeleteTodo(todos[m.todoCursor].ID)
			if m.todoCursor > 0 {
				m.todoCursor--
			}
		}
	case "a":
		m.todoInput.SetValue("")
		m.todoInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) updateTodoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.todoInput.Value()
		m.todoInput.Blur()
		if _, err := m.store.AddTodo(text, m.memberID); err != nil {
			m.statusLine = "todo text is required"
		}
		return m, nil
	case "esc":
		m.todoInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.todoInput, cmd = m.todoInput.Update(msg)
	return m, cmd
}
