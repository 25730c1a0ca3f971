// Package rating implements the Dubskiy Rating, a five-level startup
// score derived from the announced funding amount.
package rating

import (
	"fmt"
	"strconv"
	"strings"

	"StartupContent/internal/domain"
)

// Level is one step of the rating scale with bilingual descriptions.
type Level struct {
	Score         int
	Symbol        string
	DescriptionRU string
	DescriptionEN string
}

var scale = []Level{
	{1, "🚀", "Интересная идея, но нужна серьезная доработка", "Interesting idea, but needs serious refinement"},
	{2, "🚀🚀", "Перспективный проект с хорошим потенциалом", "Promising project with good potential"},
	{3, "🚀🚀🚀", "Сильное решение с реальными бизнес-перспективами", "Strong solution with real business prospects"},
	{4, "🚀🚀🚀🚀", "Отличный стартап с высокой вероятностью успеха", "Excellent startup with high probability of success"},
	{5, "🚀🚀🚀🚀🚀", "Революционный проект, способный изменить индустрию", "Revolutionary project that can change the industry"},
}

// Score maps a funding amount string like "$20 million" onto the 1-5
// scale. A missing or unparsable amount keeps the neutral default of 3.
func Score(fundingAmount string) int {
	if fundingAmount == "" {
		return 3
	}
	raw := strings.ReplaceAll(fundingAmount, "$", "")
	raw = strings.ReplaceAll(raw, " million", "")
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 3
	}
	switch {
	case amount > 50:
		return 5
	case amount > 20:
		return 4
	case amount > 5:
		return 3
	default:
		return 2
	}
}

// LevelFor returns the scale entry for score, falling back to the
// middle level for out-of-range values.
func LevelFor(score int) Level {
	for _, l := range scale {
		if l.Score == score {
			return l
		}
	}
	return scale[2]
}

// Format renders the rating block for a post in the given language.
func Format(info domain.ArticleInfo, lang domain.Language) string {
	level := LevelFor(Score(info.FundingAmount))
	if lang == domain.LanguageEnglish {
		return fmt.Sprintf("\n\n📊 **Dubskiy Rating**: %s (%d/5)\n%s",
			level.Symbol, level.Score, level.DescriptionEN)
	}
	return fmt.Sprintf("\n\n📊 **Рейтинг Дубского**: %s (%d/5)\n%s",
		level.Symbol, level.Score, level.DescriptionRU)
}
