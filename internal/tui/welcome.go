package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Войти", "Зарегистрироваться"}}
}

func (m welcomeModel) View() string {
	out := "Выберите действие:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage("CRED VAULT", out, "↑/↓: выбор │ enter: подтвердить │ q: выход")
}
