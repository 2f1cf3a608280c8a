package content

// defaultContent is the built-in seed substituted when no persisted content
// exists or the persisted value fails to decode. It is a shared immutable
// template; load paths hand out deep copies only.
var defaultContent = Content{
	Services: []Service{
		{
			Icon:        "Globe",
			Title:       "Корпоративные сайты",
			Description: "Разработка представительских сайтов с премиальным дизайном и продуманной структурой",
		},
		{
			Icon:        "ShoppingCart",
			Title:       "Интернет-магазины",
			Description: "Создание удобных e-commerce решений с высокой конверсией и современными платёжными системами",
		},
		{
			Icon:        "Megaphone",
			Title:       "Landing Page",
			Description: "Эффективные посадочные страницы для рекламных кампаний и продвижения продуктов",
		},
		{
			Icon:        "Layout",
			Title:       "Web-приложения",
			Description: "Разработка сложных интерактивных приложений и CRM-систем под ваши задачи",
		},
		{
			Icon:        "Smartphone",
			Title:       "Мобильная адаптация",
			Description: "Оптимизация сайтов для идеального отображения на всех устройствах",
		},
		{
			Icon:        "TrendingUp",
			Title:       "SEO-продвижение",
			Description: "Комплексное продвижение сайта в поисковых системах для привлечения клиентов",
		},
	},
	Blog: []BlogPost{
		{
			Category: "Разработка",
			Title:    "Тренды веб-разработки 2024",
			Excerpt:  "Какие технологии и подходы будут актуальны в новом году",
			Date:     "15 декабря 2024",
			Icon:     "Code",
		},
		{
			Category: "Дизайн",
			Title:    "Психология цвета в интерфейсах",
			Excerpt:  "Как правильно выбрать цветовую схему для вашего сайта",
			Date:     "10 декабря 2024",
			Icon:     "Palette",
		},
		{
			Category: "Маркетинг",
			Title:    "Увеличение конверсии сайта",
			Excerpt:  "10 проверенных способов повысить продажи через веб-сайт",
			Date:     "5 декабря 2024",
			Icon:     "TrendingUp",
		},
	},
	Contact: Contact{
		Name:    "Life-Promo",
		Email:   "info@life-promo.ru",
		Phone:   "+7 (999) 999-99-99",
		Address: "Москва, ул. Примерная, 1",
	},
}
