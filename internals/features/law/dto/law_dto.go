package dto

type LawListItem struct {
	ID      uint    `json:"id"`
	LawName string  `json:"law_name"`
	LawCode *string `json:"law_code"`
	Status  string  `json:"status"`
}

type LawArticleItem struct {
	ID           uint    `json:"id"`
	LawID        uint    `json:"law_id"`
	ArticleNo    string  `json:"article_no"`
	Title        *string `json:"title"`
	Content      string  `json:"content"`
	VersionCount int64   `json:"version_count"`
}

type LawArticleVersionItem struct {
	ID            uint    `json:"id"`
	ArticleID     uint    `json:"article_id"`
	EffectiveDate *string `json:"effective_date"`
	Content       string  `json:"content"`
}
