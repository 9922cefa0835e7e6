package templates

import (
	"embed"
	"html/template"
	"io"
	"time"

	"legendidle/domain"
)

//go:embed pages/*.gohtml
var pageFS embed.FS

//go:embed static/styles.css
var stylesheet []byte

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"fmtTime": func(t *time.Time) string {
		if t == nil {
			return "—"
		}
		return t.Format("02.01.2006 15:04")
	},
}).ParseFS(pageFS, "pages/*.gohtml"))

type SkillRow struct {
	Name  string
	Level int
}

type PageData struct {
	User  *domain.SessionUser
	Flash *domain.Flash
}

type GameData struct {
	PageData
	Skills       []SkillRow
	Gold         int
	LastTraining *time.Time
	RoleLabel    string
}

func RenderHome(w io.Writer, data PageData) error {
	return pages.ExecuteTemplate(w, "home.gohtml", data)
}

func RenderGame(w io.Writer, data GameData) error {
	return pages.ExecuteTemplate(w, "game.gohtml", data)
}

// Stylesheet returns the embedded CSS.
func Stylesheet() []byte {
	return stylesheet
}

// GameDataFor собирает данные игровой страницы из сессионного пользователя
func GameDataFor(user *domain.SessionUser, flash *domain.Flash) GameData {
	data := GameData{PageData: PageData{User: user, Flash: flash}}
	if user == nil {
		return data
	}
	data.Gold = user.Progress.Gold
	data.LastTraining = user.Progress.LastTraining
	data.RoleLabel = "Mängija"
	if user.IsGuest {
		data.RoleLabel = "Külaline"
	}
	for _, name := range domain.SkillNames {
		if level, ok := user.Progress.Skills[name]; ok {
			data.Skills = append(data.Skills, SkillRow{Name: name, Level: level})
		}
	}
	return data
}
