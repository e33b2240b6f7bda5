package randomuser

// Name имя профиля
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Picture ссылки на аватары профиля
type Picture struct {
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
	Large     string `json:"large"`
}

// Profile профиль сюрвейера из каталога
type Profile struct {
	Name    Name    `json:"name"`
	Picture Picture `json:"picture"`
}

// FullName возвращает полное имя профиля
func (p Profile) FullName() string {
	if p.Name.First == "" {
		return p.Name.Last
	}
	if p.Name.Last == "" {
		return p.Name.First
	}
	return p.Name.First + " " + p.Name.Last
}

type listResponse struct {
	Results []Profile `json:"results"`
}
