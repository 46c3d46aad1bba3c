package explorer

import (
	"strings"

	"golang.org/x/text/cases"
)

// TodoStatus filters todos by completion.
type TodoStatus string

const (
	TodosAll       TodoStatus = "all"
	TodosCompleted TodoStatus = "completed"
	TodosPending   TodoStatus = "pending"
)

func ParseTodoStatus(s string) TodoStatus {
	switch TodoStatus(s) {
	case TodosCompleted, TodosPending:
		return TodoStatus(s)
	}
	return TodosAll
}

type matcher struct {
	fold cases.Caser
	term string
}

func newMatcher(term string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.term = m.fold.String(strings.TrimSpace(term))
	return m
}

func (m *matcher) any(fields ...string) bool {
	if m.term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.term) {
			return true
		}
	}
	return false
}

// SearchUsers matches name, username and email.
func SearchUsers(users []User, term string) []User {
	m := newMatcher(term)
	var out []User
	for _, u := range users {
		if m.any(u.Name, u.Username, u.Email) {
			out = append(out, u)
		}
	}
	return out
}

// SearchPosts matches title and body.
func SearchPosts(posts []Post, term string) []Post {
	m := newMatcher(term)
	var out []Post
	for _, p := range posts {
		if m.any(p.Title, p.Body) {
			out = append(out, p)
		}
	}
	return out
}

func SearchAlbums(albums []Album, term string) []Album {
	m := newMatcher(term)
	var out []Album
	for _, a := range albums {
		if m.any(a.Title) {
			out = append(out, a)
		}
	}
	return out
}

// FilterTodos matches the title and the completion status.
func FilterTodos(todos []Todo, term string, status TodoStatus) []Todo {
	m := newMatcher(term)
	var out []Todo
	for _, t := range todos {
		switch {
		case status == TodosCompleted && !t.Completed:
			continue
		case status == TodosPending && t.Completed:
			continue
		}
		if m.any(t.Title) {
			out = append(out, t)
		}
	}
	return out
}

// UserNames indexes user names by id for labelling posts, albums and todos.
func UserNames(users []User) map[int]string {
	out := make(map[int]string, len(users))
	for _, u := range users {
		out[u.ID] = u.Name
	}
	return out
}
