package screen

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/mattn/go-runewidth"
)

const (
	nameWidth  = 36
	labelWidth = 24
	barWidth   = 20
)

// RenderItem draws one judgment as a card. The collapsed card is a single
// line; expanded cards add rationale, breakdown and data gaps.
func RenderItem(j dto.FoodJudgment, expanded bool) string {
	var b strings.Builder
	name := runewidth.Truncate(j.FoodName, nameWidth, "…")
	fmt.Fprintf(&b, "%s %s %3.0f%% (%s)  [%s]\n",
		emojiCell(j.RatingEmoji), runewidth.FillRight(name, nameWidth), j.OverallScore, j.OverallRating, j.FoodID)
	if !expanded {
		return b.String()
	}

	if j.Rationale != "" {
		fmt.Fprintf(&b, "    %s\n", j.Rationale)
	}
	if j.Recommendation != "" {
		fmt.Fprintf(&b, "    💡 %s\n", j.Recommendation)
	}
	if rows := breakdownRows(j.Breakdown); len(rows) > 0 {
		b.WriteString("    Score Breakdown:\n")
		for _, row := range rows {
			b.WriteString(row)
		}
	}
	if len(j.DataGaps) > 0 {
		b.WriteString("    Data Gaps:\n")
		for _, gap := range j.DataGaps {
			fmt.Fprintf(&b, "      • %s\n", gap)
		}
	}
	return b.String()
}

func breakdownRows(breakdown map[string]dto.CategoryScore) []string {
	var rows []string
	seen := map[string]bool{}
	add := func(key string, cs dto.CategoryScore) {
		seen[key] = true
		rows = append(rows, fmt.Sprintf("      %s %3.0f  %s\n",
			runewidth.FillRight(dto.CategoryLabel(key), labelWidth), cs.Score, cs.Reasoning))
	}
	for _, c := range dto.Categories {
		if cs, ok := breakdown[c.Key]; ok {
			add(c.Key, cs)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(breakdown)) {
		if !seen[key] {
			add(key, breakdown[key])
		}
	}
	return rows
}

// emojiCell pads an emoji to two terminal columns.
func emojiCell(emoji string) string {
	if emoji == "" {
		emoji = "•"
	}
	return runewidth.FillRight(emoji, 2)
}

func renderEmpty(e EmptyState) string {
	return fmt.Sprintf("%s\n%s\n", e.Title, e.Subtitle)
}

func (s *CartScreen) Render() string {
	if e, ok := s.EmptyState(); ok {
		return renderEmpty(e)
	}
	return renderList(s.HeaderText(), s.Items(), s.IsExpanded)
}

func (s *FavoritesScreen) Render() string {
	if e, ok := s.EmptyState(); ok {
		return renderEmpty(e)
	}
	return renderList(s.HeaderText(), s.Items(), s.IsExpanded)
}

func renderList(header string, items []dto.FoodJudgment, expanded func(string) bool) string {
	var b strings.Builder
	b.WriteString(header + "\n\n")
	for _, it := range items {
		b.WriteString(RenderItem(it, expanded(it.FoodID)))
	}
	return b.String()
}

func (s *SummaryScreen) Render() string {
	if e, ok := s.EmptyState(); ok {
		return renderEmpty(e)
	}
	sum := s.Summary()

	var b strings.Builder
	fmt.Fprintf(&b, "%s Overall Score: %g%% (%s)\n", s.ScoreEmoji(), sum.AverageScore, s.ScoreLabel())
	fmt.Fprintf(&b, "%d %s in cart\n\n", sum.TotalItems, plural(sum.TotalItems, "item"))

	if chart := s.ChartSlices(); len(chart) > 0 {
		b.WriteString("Rating Distribution\n")
		for _, c := range chart {
			n := c.Count * barWidth / sum.TotalItems
			if n == 0 {
				n = 1
			}
			fmt.Fprintf(&b, "  %s %s %d\n", runewidth.FillRight(c.Name, 8), strings.Repeat("█", n), c.Count)
		}
		b.WriteString("\n")
	}

	if rows := s.Breakdown(); len(rows) > 0 {
		b.WriteString("Item Breakdown\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "  %s %s %d %s\n",
				emojiCell(dto.EmojiForRating(r.Rating)), runewidth.FillRight(r.Rating, 8), r.Count, plural(r.Count, "item"))
		}
		b.WriteString("\n")
	}

	if sum.SummaryText != "" {
		b.WriteString(sum.SummaryText + "\n\n")
	}
	if recs := s.Recommendations(); len(recs) > 0 {
		b.WriteString("💡 Recommendations\n")
		for _, r := range recs {
			fmt.Fprintf(&b, "  • %s\n", r)
		}
	}
	return b.String()
}

// RenderMessage draws one chat message.
func RenderMessage(m Message) string {
	prefix := "You"
	if m.Sender == SenderAI {
		prefix = "Judge"
	}
	return fmt.Sprintf("[%s] %s: %s\n", m.Timestamp.Format("15:04"), prefix, m.Text)
}
