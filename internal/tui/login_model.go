package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentMain))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText))
	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorAccentBright))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))
)

// Login holds the credentials collected by the login form.
type Login struct {
	StudentID string
	Password  string
	Cancelled bool
}

// LoginModel is the TUI model for the login form. The admin form has a
// single password field; the student form asks for the student id first.
type LoginModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	done      bool
	cancelled bool
}

// NewLoginModel builds a login form. withID adds the student id field in
// front of the password field.
func NewLoginModel(title string, withID bool) LoginModel {
	var labels []string
	if withID {
		labels = append(labels, "Student ID")
	}
	labels = append(labels, "Password")

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 64
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	if withID {
		inputs[0].Placeholder = "9 digit student id"
	}
	password := &inputs[len(inputs)-1]
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	inputs[0].Focus()

	return LoginModel{title: title, labels: labels, inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			m.setFocus(m.focus + 1)
			return m, nil
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m LoginModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(m.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("enter: next | esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// RunAdminLogin asks for the admin password.
func RunAdminLogin() (Login, error) {
	return runLogin(NewLoginModel("Admin login", false))
}

// RunStudentLogin asks for a student id and password.
func RunStudentLogin() (Login, error) {
	return runLogin(NewLoginModel("Student login", true))
}

func runLogin(model LoginModel) (Login, error) {
	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return Login{}, err
	}
	m := finalModel.(LoginModel)
	if m.cancelled {
		return Login{Cancelled: true}, nil
	}
	login := Login{Password: m.inputs[len(m.inputs)-1].Value()}
	if len(m.inputs) == 2 {
		login.StudentID = m.inputs[0].Value()
	}
	return login, nil
}
