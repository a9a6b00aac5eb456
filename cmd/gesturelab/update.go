package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recList.SetSize(m.leftWidth(), m.bodyHeight())
		m.listReady = true
		return m, nil

	case recordingsLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("load recordings: %v", msg.err)
			return m, nil
		}
		m.recList.SetItems(msg.items)
		m.status = fmt.Sprintf("%d recordings", len(msg.items))
		return m, nil

	case recordingLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("load recording: %v", msg.err)
			return m, nil
		}
		m.replay = newReplay(msg.rec, m.cfg.Engine)
		m.status = fmt.Sprintf("loaded %q (%d samples)", msg.rec.Name, len(msg.rec.Samples))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gotoMode {
		return m.handleGotoKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Goto):
		m.gotoMode = true
		m.gotoQuery = ""
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.recList.SelectedItem().(recordingItem); ok {
			return m, loadRecording(m.store, item.rec.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Step):
		if m.replay != nil {
			if !m.replay.StepForward() {
				m.status = "stream exhausted; t fires remaining timers"
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.RunAll):
		if m.replay != nil {
			m.replay.RunToEnd()
			m.status = "stream replayed"
		}
		return m, nil

	case key.Matches(msg, m.keys.Settle):
		if m.replay != nil {
			m.replay.Settle()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if m.replay != nil {
			m.replay = newReplay(m.replay.rec, m.cfg.Engine)
			m.status = "replay reset"
		}
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.replay = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.recList, cmd = m.recList.Update(msg)
	return m, cmd
}

func (m model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.gotoMode = false
		m.gotoQuery = ""
		return m, nil
	case tea.KeyEnter:
		if idx := nearestIndex(m.recList.Items(), m.gotoQuery); idx >= 0 {
			m.recList.Select(idx)
		}
		m.gotoMode = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.gotoQuery) > 0 {
			m.gotoQuery = m.gotoQuery[:len(m.gotoQuery)-1]
		}
		return m, nil
	case tea.KeyRunes:
		m.gotoQuery += string(msg.Runes)
		return m, nil
	case tea.KeySpace:
		m.gotoQuery += " "
		return m, nil
	}
	return m, nil
}
