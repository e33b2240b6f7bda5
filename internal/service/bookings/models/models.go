package models

// SiteOption пара (идентификатор объекта, подпись) для выбора объекта
// при создании бронирования. Каталог собирается дедупликацией объектов
// из загруженного списка обследований.
type SiteOption struct {
	Idx   string
	Label string
}

// LoadResult итог гидратации хранилища из upstream
type LoadResult struct {
	Surveys   int
	Surveyors int
	Sites     int
}
