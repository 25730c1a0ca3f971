package content

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"

	"StartupContent/internal/domain"
	"StartupContent/internal/ports"
	"StartupContent/internal/rating"
)

var placeholderRe = regexp.MustCompile(`\{[a-z_0-9]+\}`)

// fill substitutes {key} markers from args. Markers with no matching
// key stay in place; renderSafe decides what to do with leftovers.
func fill(template string, args map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		key := strings.Trim(m, "{}")
		if v, ok := args[key]; ok {
			return v
		}
		return m
	})
}

// renderSafe fills template and falls back to fallback when any
// placeholder stayed unresolved. Generation never fails on a template
// mismatch.
func renderSafe(template, fallback string, args map[string]string, logger *slog.Logger) string {
	out := fill(template, args)
	if left := placeholderRe.FindString(out); left != "" {
		logger.Warn("unresolved placeholder in template", "placeholder", left)
		return fill(fallback, args)
	}
	return out
}

// Fallback renders posts and reel scripts from the style catalog
// without calling a language model. It never returns an error.
type Fallback struct {
	rng    *rand.Rand
	logger *slog.Logger
}

var _ ports.Generator = (*Fallback)(nil)

// NewFallback creates a generator seeded from src. Pass a fixed-seed
// source in tests for deterministic output.
func NewFallback(src rand.Source, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{rng: rand.New(src), logger: logger}
}

func (f *Fallback) pick(items []string) string {
	return items[f.rng.Intn(len(items))]
}

// GeneratePost builds a complete post: intro, signature phrase, title,
// summary excerpt, body, rating block, conclusion, social links and
// hashtags.
func (f *Fallback) GeneratePost(_ context.Context, info domain.ArticleInfo, lang domain.Language) (string, error) {
	if lang == domain.LanguageEnglish {
		return f.englishPost(info), nil
	}
	return f.russianPost(info), nil
}

func (f *Fallback) russianPost(info domain.ArticleInfo) string {
	company := info.CompanyName
	if company == "" {
		company = "этот стартап"
	}
	action := "развивается"
	if info.FundingAmount != "" {
		action = "привлек " + info.FundingAmount
	}

	args := map[string]string{
		"company": company,
		"action":  action,

		"reason": "Это решение может изменить индустрию и создать новые возможности для бизнеса",
		"point1": "Инновационный подход к решению проблемы",
		"point2": "Сильная команда с опытом в индустрии",
		"point3": "Растущий рынок с большим потенциалом",

		"special_feature": "Уникальный подход к решению проблемы, который отличает их от конкурентов",
		"reason1":         "Потенциал масштабирования на международные рынки",
		"reason2":         "Сильная технологическая база и инновационный продукт",
		"reason3":         "Значительная рыночная возможность",

		"analysis":  "Проект имеет все шансы на успех благодаря фокусу на конкретной нише и глубокому пониманию потребностей клиентов",
		"potential": "⭐⭐⭐⭐⭐",

		"poetic_view":   "Революционное решение, которое меняет правила игры",
		"business_view": "Сильная бизнес-модель с потенциалом быстрого роста",

		"problem":    "Существующие решения неэффективны и дороги",
		"solution":   "Инновационный подход с использованием новых технологий",
		"innovation": "Применение ИИ и машинного обучения для оптимизации процессов",
		"prospects":  "Расширение на новые рынки и развитие дополнительных функций",

		"market": "Быстрорастущий сегмент с большим потенциалом",
		"growth": "Ежегодный рост более 30%",
		"impact": "Изменение подхода к решению проблемы в индустрии",

		"situation": "Компания столкнулась с проблемой эффективности",
		"actions":   "Внедрение новой технологии и оптимизация процессов",
		"result":    "Увеличение производительности на 40% и снижение затрат",
		"insights":  "Инновационные решения могут значительно повысить эффективность бизнеса",

		"before":            "Низкая эффективность и высокие затраты",
		"after":             "Оптимизированные процессы и снижение расходов",
		"growth_percentage": "40",
		"forecast":          "Дальнейший рост и расширение на новые рынки",
	}

	intro := renderSafe(f.pick(introTemplatesRU), introTemplatesRU[0], args, f.logger)
	body := renderSafe(f.pick(bodyTemplatesRU), bodyTemplatesRU[0], args, f.logger)
	phrase := f.pick(signaturePhrasesRU)
	conclusion := f.pick(conclusionTemplatesRU)
	hashtags := f.pick(hashtagsRU)
	ratingBlock := rating.Format(info, domain.LanguageRussian)

	return fmt.Sprintf("%s\n\n%s\n\n**%s**\n\n%s...\n\n%s%s\n\n%s%s\n%s",
		intro, phrase, info.Title, summaryExcerpt(info.ContentSummary),
		body, ratingBlock, conclusion, socialLinksRU, hashtags)
}

func (f *Fallback) englishPost(info domain.ArticleInfo) string {
	company := info.CompanyName
	if company == "" {
		company = "this startup"
	}
	action := "is developing"
	if info.FundingAmount != "" {
		action = "raised " + info.FundingAmount
	}
	phrase := f.pick(signaturePhrasesEN)

	args := map[string]string{
		"phrase":  phrase,
		"company": company,
		"action":  action,
		"reason":  "This solution can change the industry and create new business opportunities.",
		"point1":  "Innovative approach to problem-solving",
		"point2":  "Strong team with industry experience",
		"point3":  "Growing market with great potential",
	}

	intro := renderSafe(f.pick(introTemplatesEN), introTemplatesEN[0], args, f.logger)
	body := renderSafe(f.pick(bodyTemplatesEN), bodyTemplatesEN[0], args, f.logger)
	conclusion := f.pick(conclusionTemplatesEN)
	hashtags := f.pick(hashtagsEN)
	ratingBlock := rating.Format(info, domain.LanguageEnglish)

	return fmt.Sprintf("%s\n\n%s\n\n**%s**\n\n%s...\n\n%s%s\n\n%s%s\n%s",
		intro, phrase, info.Title, summaryExcerpt(info.ContentSummary),
		body, ratingBlock, conclusion, socialLinksEN, hashtags)
}

// GenerateReelScript builds a short-video script with hook, body,
// rating, conclusion and shooting ideas.
func (f *Fallback) GenerateReelScript(_ context.Context, info domain.ArticleInfo) (string, error) {
	company := info.CompanyName
	if company == "" {
		company = "этот стартап"
	}
	industry := info.Industry
	if industry == "" {
		industry = "индустрию"
	}
	amount := "миллионы"
	if info.FundingAmount != "" {
		amount = strings.ReplaceAll(info.FundingAmount, "$", "")
	}

	args := map[string]string{
		"company":  company,
		"industry": industry,
		"topic":    industry,
		"amount":   amount,

		"interesting_fact": f.pick([]string{
			"90% стартапов терпят неудачу в первый год",
			"инвестиции в " + industry + " выросли на 200% за последний год",
			"успешные стартапы проходят в среднем через 3 пивота",
			"только 0.05% стартапов получают венчурное финансирование",
		}),
		"visualization": f.pick([]string{
			"команда " + company + " работает день и ночь над решением, которое изменит " + industry,
			"инвесторы выстраиваются в очередь, чтобы вложиться в перспективный стартап",
			"пользователи восторженно отзываются о новом продукте, который упрощает их жизнь",
		}),
		"explanation": f.pick([]string{
			"они создали уникальную технологию, которая решает проблему эффективности",
			"их платформа соединяет поставщиков и потребителей напрямую, устраняя посредников",
			"их алгоритм использует ИИ для оптимизации процессов",
		}),
		"secret": f.pick([]string{
			"они фокусируются на реальной проблеме и предлагают простое решение",
			"их команда состоит из экспертов с опытом в " + industry,
			"они нашли уникальную нишу, которую игнорировали крупные игроки",
		}),

		"problem":     "доступ к заработанным деньгам до дня зарплаты",
		"solution":    "интеграция с HR-системами компаний",
		"result":      "увеличение удержания сотрудников на 31%",
		"before":      "сотрудники ждали зарплату до конца месяца",
		"after":       "мгновенный доступ к заработанным средствам",
		"future":      "полноценная финансовая платформа для сотрудников",
		"metric":      "удержание персонала",
		"percentage":  "31",
		"time_period": "6 месяцев",
		"step1":       "анализ проблемы",
		"step2":       "разработка решения",
		"step3":       "интеграция с существующими системами",
		"outcome":     "рост удовлетворенности сотрудников",
	}

	tmpl := f.pickReelTemplate()
	hook := renderSafe(tmpl.Hook, "Стартап за 30 секунд! {company} делает то, что изменит {industry}!", args, f.logger)
	body := renderSafe(tmpl.Body, "Вот как это работает: {explanation}. Представляете масштаб?", args, f.logger)

	level := rating.LevelFor(rating.Score(info.FundingAmount))
	ratingBlock := fmt.Sprintf("РЕЙТИНГ ДУБСКОГО: %s (%d/5)\n%s", level.Symbol, level.Score, level.DescriptionRU)

	script := fmt.Sprintf(`HOOK: %s

ОСНОВНАЯ ЧАСТЬ: %s

%s

ЗАКЛЮЧЕНИЕ: %s

ВИЗУАЛЬНЫЕ ИДЕИ:
- Показать логотип и продукт компании
- Использовать анимированную инфографику для объяснения
- Включить эмоциональные реакции пользователей
- Визуализировать "Рейтинг Дубского" с анимацией появления ракет
%s

ХЭШТЕГИ: %s
`, hook, body, ratingBlock, tmpl.Conclusion, socialLinksRU, f.pick(hashtagsRU))

	return script, nil
}

// pickReelTemplate chooses among the templates whose hook does not need
// a metric value. When none qualify the first template is used.
func (f *Fallback) pickReelTemplate() reelTemplate {
	var eligible []reelTemplate
	for _, t := range reelTemplates {
		if !strings.Contains(t.Hook, "metric") {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return reelTemplates[0]
	}
	return eligible[f.rng.Intn(len(eligible))]
}

// summaryExcerpt trims the article summary to the post excerpt length.
func summaryExcerpt(summary string) string {
	runes := []rune(summary)
	if len(runes) <= 200 {
		return summary
	}
	return string(runes[:200])
}
