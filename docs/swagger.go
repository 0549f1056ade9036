// Package docs Smart Jordan API.
//
// Бэкенд туристического гида по Иордании.
// Предоставляет каталог направлений с фильтрами, состояние навигации по странице,
// симулированные показания датчиков, чат с гидом, погоду и маркеры карты.
//
// Основные возможности:
// - Фильтрация каталога направлений (категория, сложность, длительность, бюджет, доступность, поиск)
// - Вычисление прогресса прокрутки и активной секции
// - Живые показания (температура, влажность, загруженность, качество воздуха) с публикацией в Redis Stream
// - Пересылка стенограммы чата во внешний сервис ответов
// - Текущая погода с кешем и запасными значениями
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
