package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ContactListView ViewState = iota
	ProfileView
	ConfirmSyncView
	SyncView
	ResultView
)

// ProfileLister reads the cached contact profiles shown in the list view.
type ProfileLister interface {
	List(criteria map[string]any) ([]*models.CachedProfile, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	store        ProfileLister
	reconciler   *tasks.FollowingReconciler
	username     string
	width        int
	height       int
	contactList  list.Model
	profiles     []models.ContactProfile
	selected     *models.ContactProfile
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.ReconcileResult
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, store ProfileLister, reconciler *tasks.FollowingReconciler, username string) *Model {
	return &Model{
		ctx:        ctx,
		view:       ContactListView,
		store:      store,
		reconciler: reconciler,
		username:   username,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by loading cached contact profiles.
func (m *Model) Init() tea.Cmd {
	return m.loadProfiles()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.contactList.Width() == 0 {
			m.contactList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ContactListView:
			return m.handleContactListKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		case ConfirmSyncView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case profilesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.profiles = msg.profiles
		items := make([]list.Item, len(msg.profiles))
		for i, profile := range msg.profiles {
			items[i] = contactItem{profile: profile}
		}
		m.contactList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.contactList.Title = "Contact Moods"
		m.contactList.SetSize(m.width-4, m.height-8)
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case syncCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		if m.progressChan != nil {
			m.progressChan = nil
		}
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case ContactListView:
		return m.renderContactList()
	case ProfileView:
		return m.renderProfile()
	case ConfirmSyncView:
		return m.renderConfirm()
	case SyncView:
		return m.renderSync()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleContactListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.view = ConfirmSyncView
		return m, nil
	case "enter":
		selected := m.contactList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(contactItem); ok {
				profile := item.profile
				m.selected = &profile
				m.view = ProfileView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ContactListView
		m.selected = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = ContactListView
		return m, nil
	case "y":
		m.view = SyncView
		return m, m.startSync()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = ContactListView
		m.result = nil
		m.err = nil
		return m, m.loadProfiles()
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == ContactListView {
		m.contactList, cmd = m.contactList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadProfiles() tea.Cmd {
	return func() tea.Msg {
		cached, err := m.store.List(nil)
		if err != nil {
			return profilesLoadedMsg{err: err}
		}

		profiles := make([]models.ContactProfile, len(cached))
		for i, c := range cached {
			profiles[i] = c.Profile()
		}
		return profilesLoadedMsg{profiles: profiles}
	}
}

func (m *Model) startSync() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	progressChan := m.progressChan

	go func() {
		result, err := m.reconciler.Reconcile(m.ctx, m.username, false, progressChan)
		m.result = result
		m.err = err
		close(progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return syncCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return syncCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderContactList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.sync, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.contactList.View(), helpView)
}

func (m *Model) renderProfile() string {
	if m.selected == nil {
		m.view = ContactListView
		return ""
	}

	profile := m.selected
	title := styles.title.Render(fmt.Sprintf("%s %s", emotion.GlyphFor(profile.EmotionCode), profile.Name))

	if !profile.Known {
		body := fmt.Sprintf("\n%s\n\n%s is not on the app yet.\n", styles.warn.Render(models.NotAUserText), profile.Name)
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
		return fmt.Sprintf("%s%s\n%s", title, body, helpView)
	}

	info := fmt.Sprintf("\nMood: %s\nPhone: %s\n", emotion.NameFor(profile.EmotionCode), profile.Phone)
	if profile.City != "" {
		info += fmt.Sprintf("City: %s\n", profile.City)
	}
	if profile.ProfileText != "" {
		info += fmt.Sprintf("\n%s\n", profile.ProfileText)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Sync following list for '%s'?", m.username))
	info := fmt.Sprintf("\nLocal contacts: %d\nThis pulls remote follows and pushes local ones.\n", len(m.profiles))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderSync() string {
	title := styles.title.Render("Syncing Following List")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchFollowing:
		phase = "Fetching remote following list..."
	case tasks.PullFollows:
		phase = fmt.Sprintf("Pulling contacts (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.PushFollows:
		phase = "Pushing local follows..."
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Sync failed: %v\n\nPress r to go back, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress r to go back, q to quit")
	}

	title := styles.ok.Render("✓ Sync Complete!")
	info := fmt.Sprintf(
		"\nPulled: %d\nPushed: %d\nDropped (list full): %d\nPush failures: %d",
		m.result.Pulled,
		m.result.Pushed,
		m.result.Dropped,
		m.result.PushFailures,
	)

	var mode string
	if m.result.UploadOnly {
		mode = fmt.Sprintf("\n\n%s", styles.warn.Render("No remote list existed; uploaded the local list."))
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, mode, helpView)
}
