package tui

import (
	"fmt"
	"strings"

	"staffdesk-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewNewsFeed() string {
	var b strings.Builder
	b.WriteString(m.renderCategoryTabs())
	b.WriteString("\n\n")

	items := m.filteredNews()
	if len(items) == 0 {
		b.WriteString(styleMuted().Render("No posts in this category."))
		return b.String()
	}

	for i, item := range items {
		if i == m.newsCursor {
			b.WriteString(m.renderNewsCard(item))
		} else {
			b.WriteString(m.renderNewsCardCollapsed(item))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) renderCategoryTabs() string {
	labels := []string{"All"}
	for _, c := range model.NewsCategories() {
		labels = append(labels, string(c))
	}

	var tabs []string
	for i, l := range labels {
		if i == m.newsCategory {
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).
				Foreground(colorSelectedFg).Background(colorSelectedBg).
				Padding(0, 1).Render(l))
		} else {
			tabs = append(tabs, styleMuted().Padding(0, 1).Render(l))
		}
	}
	return strings.Join(tabs, " ")
}

func (m appModel) renderNewsCardCollapsed(item model.NewsItem) string {
	meta := fmt.Sprintf("%s · %s · %s", item.Category, item.Author, formatDisplayDate(item.Date))
	body := lipgloss.NewStyle().Bold(true).Render(item.Title) + "\n" + styleMuted().Render(meta)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Width(m.cardWidth()).
		Render(body)
}

func (m appModel) renderNewsCard(item model.NewsItem) string {
	w := m.cardWidth()
	meta := fmt.Sprintf("%s · %s · %s", item.Category, item.Author, formatDisplayDate(item.Date))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(item.Title))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(meta))
	b.WriteString("\n")
	b.WriteString(renderMarkdown(item.Content, w-4))
	b.WriteString("\n\n")
	b.WriteString(m.renderReactions(item))
	b.WriteString("\n")
	b.WriteString(m.renderComments(item))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Padding(0, 1).
		Width(w).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m appModel) renderReactions(item model.NewsItem) string {
	mine := m.store.State.MyReactions[item.ID]
	labels := map[model.ReactionType]string{
		model.ReactionLike:      "l 👍",
		model.ReactionCelebrate: "b 🎉",
		model.ReactionSupport:   "s 💪",
	}

	var parts []string
	for _, kind := range model.ReactionTypes() {
		part := fmt.Sprintf("%s %d", labels[kind], item.Reactions[kind])
		if mine == kind {
			part = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(part)
		} else {
			part = styleMuted().Render(part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "   ")
}

func (m appModel) renderComments(item model.NewsItem) string {
	var b strings.Builder
	if len(item.Comments) == 1 {
		b.WriteString(styleMuted().Render("1 comment"))
	} else {
		b.WriteString(styleMuted().Render(fmt.Sprintf("%d comments", len(item.Comments))))
	}
	b.WriteString("\n")

	for _, c := range item.Comments {
		author := lipgloss.NewStyle().Bold(true).Render(c.Author)
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n", author, styleMuted().Render(formatDisplayDate(c.Date)), c.Text))
	}

	if m.commenting {
		b.WriteString("\n")
		b.WriteString(renderInputLine(m.cardWidth()-4, m.commentInput.View()))
		if m.commentErr != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(colorRejected).Render(m.commentErr))
		}
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("enter: post   esc: cancel"))
	}
	return b.String()
}

func (m appModel) cardWidth() int {
	w := m.width - 4
	if w > 90 {
		w = 90
	}
	if w < 40 {
		w = 40
	}
	return w
}
