// Package content generates social posts and reel scripts from article
// info using a fixed author-voice template catalog. It is the fallback
// path used when the language model is unavailable.
package content

// The catalog below is the brand voice: signature phrases, post
// sections and hashtags in Russian and English. Templates use
// {placeholder} markers filled by the generator.

var signaturePhrasesRU = []string{
	"Инновации меняют мир!",
	"Технологии будущего уже здесь!",
	"Стартап-экосистема развивается стремительно!",
	"Предприниматели, которые меняют правила игры!",
	"Вдохновляющая история успеха!",
	"Революционное решение для рынка!",
	"Будущее создается сегодня!",
	"Технологии — это новая нефть!",
	"Инвестиции в инновации — путь к успеху!",
	"Стартапы — это двигатель прогресса!",
	"От идеи до миллионов: путь стартапа",
	"Технологии, которые решают реальные проблемы",
	"Факты вместо лозунгов — вот наш подход",
	"Конкретные кейсы говорят громче слов",
}

var signaturePhrasesEN = []string{
	"Innovation never sleeps!",
	"The future of technology is here!",
	"Startup ecosystem is evolving rapidly!",
	"Entrepreneurs who change the rules of the game!",
	"Inspiring success story!",
	"Revolutionary market solution!",
	"The future is being created today!",
	"Technology is the new oil!",
	"Investing in innovation is the path to success!",
	"Startups are the engine of progress!",
	"From idea to millions: the startup journey",
	"Technologies that solve real problems",
}

var introTemplatesRU = []string{
	"🚀 Друзья! Сегодня хочу поделиться интересной историей о стартапе, который {action}.",
	"💡 Инновации никогда не спят! Сегодня в фокусе внимания {company}, который {action}.",
	"🔥 Горячие новости из мира стартапов! {company} только что {action}.",
	"👨‍💻 Технологические предприниматели снова удивляют! {company} {action}.",
	"🌟 Вдохновляющая история дня: как {company} {action}.",
	"🚀 Прорыв в мире технологий! {company} {action} и меняет правила игры.",
	"💎 Нашел для вас жемчужину! {company} {action} и заслуживает вашего внимания.",
	"🔍 Мой радар инноваций обнаружил: {company} {action}.",
	"⚡️ Энергия предпринимательства в действии! {company} {action}.",
	"💰 Инвестиционный кейс дня: {company} {action} и вот почему это важно.",
	"🧠 Разбираем по полочкам: как {company} {action} и что это значит для рынка.",
	"📊 Конкретные цифры: {company} {action} и вот результаты в цифрах.",
	"🎯 Кейс из практики: как {company} {action} и какие уроки мы можем извлечь.",
}

var introTemplatesEN = []string{
	"💡 {phrase} Today we're focusing on {company}, which {action}.",
	"🚀 Breakthrough in the tech world! {company} {action} and is changing the game.",
	"💎 Found a gem for you! {company} {action} and deserves your attention.",
	"🔍 My innovation radar detected: {company} {action}.",
	"⚡️ Entrepreneurial energy in action! {company} {action}.",
	"💰 Investment case of the day: {company} {action} and here's why it matters.",
}

var bodyTemplatesRU = []string{
	"Почему это важно? {reason}\n\nКлючевые моменты:\n✅ {point1}\n✅ {point2}\n✅ {point3}",
	"Что делает этот проект особенным?\n\n{special_feature}\n\nПочему стоит следить за развитием:\n👉 {reason1}\n👉 {reason2}",
	"Мой анализ как эксперта:\n\n{analysis}\n\nПотенциал роста: {potential}",
	"Три причины, почему это интересно:\n\n1️⃣ {reason1}\n2️⃣ {reason2}\n3️⃣ {reason3}",
	"Как технологический аналитик, я вижу в этом проекте:\n\n✨ {poetic_view}\n\nКак предприниматель, замечаю:\n💼 {business_view}",
	"Разбор по пунктам:\n\n📌 Проблема: {problem}\n📌 Решение: {solution}\n📌 Инновация: {innovation}\n📌 Перспективы: {prospects}",
	"Для тех, кто следит за трендами:\n\n📊 Рыночная ниша: {market}\n📈 Потенциал роста: {growth}\n🔄 Как это меняет индустрию: {impact}",
	"Конкретный пример из практики:\n\n🔍 Ситуация: {situation}\n🛠️ Действия: {actions}\n📈 Результат: {result}\n💡 Выводы: {insights}",
	"Давайте разберем факты:\n\n📊 Было: {before}\n📈 Стало: {after}\n💹 Рост: {growth_percentage}%\n🔮 Прогноз: {forecast}",
}

var bodyTemplatesEN = []string{
	"Why is this important? {reason}\n\nKey points:\n✅ {point1}\n✅ {point2}\n✅ {point3}",
	"My analysis as a founder:\nThis project has every chance of success due to its focus on a specific niche and deep understanding of customer needs.\n\nGrowth potential: ⭐⭐⭐⭐⭐",
	"Three reasons why this is interesting:\n\n1️⃣ Innovative approach to solving real problems\n2️⃣ Strong team with proven expertise\n3️⃣ Significant market opportunity",
}

var conclusionTemplatesRU = []string{
	"Как вы думаете, какое будущее ждет этот стартап? Делитесь мнениями в комментариях! 💬",
	"Следите за обновлениями! Технологическая революция продолжается! 🚀",
	"Подписывайтесь на канал, чтобы быть в курсе самых интересных историй из мира стартапов! ✨",
	"Какие инновационные проекты вдохновляют вас? Поделитесь в комментариях! 🔥",
	"Хотите узнать больше о подобных проектах? Ставьте лайк и делитесь с друзьями! 👍",
	"Инновации — это путь в будущее. Давайте вместе следить за развитием технологий! 🌐",
	"Как эксперт в технологиях, я вижу большой потенциал в этом направлении. А вы что думаете? 💭",
	"Сохраняйте этот пост, если хотите следить за развитием этого стартапа! 🔖",
	"Отметьте в комментариях друга, которому будет интересна эта история! 👥",
	"Какой опыт из этого кейса вы можете применить в своих проектах? Поделитесь в комментариях! 📝",
	"Если у вас есть вопросы по этой теме — задавайте их в комментариях, отвечу каждому! 🙋‍♂️",
}

var conclusionTemplatesEN = []string{
	"Follow the channel to stay updated on the most interesting stories from the world of startups! ✨",
	"Like if you think such solutions are the future!",
	"What innovative projects inspire you? Share in the comments! 🔥",
	"Want to learn more about similar projects? Like and share with friends! 👍",
	"Innovation is the path to the future. Let's follow technology development together! 🌐",
}

var hashtagsRU = []string{
	"#стартапы #инновации #технологии #евгенийдубский #эрартаэйай #erartaai",
	"#бизнес #инвестиции #стартап #евгенийдубский #эрартаэйай #erartaai",
	"#технологии #будущее #инновации #евгенийдубский #эрартаэйай #erartaai",
	"#предпринимательство #стартапы #успех #евгенийдубский #эрартаэйай #erartaai",
	"#венчурныеинвестиции #технологии #инновации #евгенийдубский #эрартаэйай #erartaai",
	"#финтех #стартапы #технологии #евгенийдубский #эрартаэйай #erartaai",
	"#цифровизация #инновации #будущее #евгенийдубский #эрартаэйай #erartaai",
	"#технологическиетренды #стартапы #бизнес #евгенийдубский #эрартаэйай #erartaai",
	"#технологическийпрорыв #инновации #будущеесегодня #евгенийдубский #эрартаэйай #erartaai",
	"#стартапэкосистема #технологическиерешения #бизнесидеи #евгенийдубский #эрартаэйай #erartaai",
	"#аналитика #бизнескейсы #стартапопыт #евгенийдубский #эрартаэйай #erartaai",
	"#технологииразвития #инновационныерешения #цифроваятрансформация #евгенийдубский #эрартаэйай #erartaai",
}

var hashtagsEN = []string{
	"#startups #innovation #technology #evgeniydubskiy #erartaai",
	"#business #investments #startup #evgeniydubskiy #erartaai",
	"#technology #future #innovation #evgeniydubskiy #erartaai",
	"#entrepreneurship #startups #success #evgeniydubskiy #erartaai",
	"#venturecapital #technology #innovation #evgeniydubskiy #erartaai",
	"#fintech #startups #technology #evgeniydubskiy #erartaai",
	"#digitalization #innovation #future #evgeniydubskiy #erartaai",
	"#techtrends #startups #business #evgeniydubskiy #erartaai",
	"#techbreakthrough #innovation #futuretoday #evgeniydubskiy #erartaai",
	"#startupecosystem #techsolutions #businessideas #evgeniydubskiy #erartaai",
	"#analytics #businesscases #startupexperience #evgeniydubskiy #erartaai",
	"#techdevelopment #innovativesolutions #digitaltransformation #evgeniydubskiy #erartaai",
}

const (
	socialLinksRU = "\n\nПодписывайтесь на мой Telegram канал: @https://t.me/evgeniydubskiy"
	socialLinksEN = "\n\nFollow me on social media:\nInstagram: @https://www.instagram.com/erarta.ai/\nX: @https://x.com/evgeniydubskiy"
)

// reelTemplate is one three-block Instagram reel script skeleton.
type reelTemplate struct {
	Hook       string
	Body       string
	Conclusion string
}

var reelTemplates = []reelTemplate{
	{
		Hook:       "Знаете ли вы, что {interesting_fact}? Сегодня расскажу о {topic}!",
		Body:       "Представьте: {visualization}. Это {topic} в действии!",
		Conclusion: "Подписывайтесь, чтобы узнавать о самых интересных стартапах первыми!",
	},
	{
		Hook:       "Стартап за 30 секунд! {company} делает то, что изменит {industry}!",
		Body:       "Вот как это работает: {explanation}. Представляете масштаб?",
		Conclusion: "Лайк, если считаете, что за такими решениями будущее!",
	},
	{
		Hook:       "Этот стартап привлек ${amount} миллионов! Хотите узнать почему?",
		Body:       "Секрет в том, что {secret}. Инвесторы это понимают!",
		Conclusion: "Комментируйте, если хотите больше историй о успешных стартапах!",
	},
	{
		Hook:       "3 секунды, чтобы удивить вас: {company} решает проблему, с которой сталкивается каждый!",
		Body:       "Проблема: {problem}\nРешение: {solution}\nРезультат: {result}",
		Conclusion: "Сохраняйте этот ролик, если вам тоже надоела эта проблема!",
	},
	{
		Hook:       "Вот как выглядит будущее {industry} — стартап {company} уже делает это реальностью!",
		Body:       "Раньше: {before}\nТеперь: {after}\nА представьте через 5 лет: {future}",
		Conclusion: "Отметьте друга, который оценит эту инновацию!",
	},
	{
		Hook:       "Реальный кейс: как {company} увеличил {metric} на {percentage}% за {time_period}!",
		Body:       "Шаг 1: {step1}\nШаг 2: {step2}\nШаг 3: {step3}\nРезультат: {outcome}",
		Conclusion: "Сохраняйте, если хотите применить эту стратегию в своем бизнесе!",
	},
}
