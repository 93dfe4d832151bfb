package dto

type MinimumWageItem struct {
	Year        int     `json:"year"`
	Hourly      int     `json:"hourly"`
	Monthly209h *int    `json:"monthly_209h"`
	NoticeNo    *string `json:"notice_no"`
	NoticeDate  *string `json:"notice_date"`
	SourceURL   *string `json:"source_url"`
}

type HolidayItem struct {
	Date      string  `json:"date"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	IsPublic  bool    `json:"is_public"`
	SourceRef *string `json:"source_ref"`
}

type PolicyBulletinItem struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	EffectiveDate *string `json:"effective_date"`
	Audience      *string `json:"audience"`
	Category      *string `json:"category"`
	SummaryMd     *string `json:"summary_md"`
	LawID         *string `json:"law_id"`
	ArticleNo     *string `json:"article_no"`
	SourceURL     *string `json:"source_url"`
	Tags          *string `json:"tags"`
}

type InterpretationItem struct {
	InterpID   string  `json:"interp_id"`
	Title      string  `json:"title"`
	AskedAt    *string `json:"asked_at"`
	AnsweredAt *string `json:"answered_at"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	LawID      *string `json:"law_id"`
	ArticleNo  *string `json:"article_no"`
	SourceURL  *string `json:"source_url"`
	Tags       *string `json:"tags"`
}
