package types

// ContactInfo holds whatever contact details could be recovered from a
// resume. Empty string means not found, never an error.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Location string `json:"location,omitempty"`
}

type ExperienceEntry struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Dates       string   `json:"dates"`
	Description []string `json:"description"`
}

type EducationEntry struct {
	Degree    string `json:"degree"`
	Major     string `json:"major"`
	Institute string `json:"institute"`
	Duration  string `json:"duration"`
	Score     string `json:"score"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
	Description  []string `json:"description"`
	Duration     string   `json:"duration"`
}

type Hero struct {
	Name    string       `json:"name"`
	Bio     string       `json:"bio"`
	Contact *ContactInfo `json:"contact,omitempty"`
}

type About struct {
	Summary string `json:"summary"`
}

// PortfolioRecord is the normalized extraction output and the only entity
// crossing the API boundary. All top-level keys are always present, even when
// the sub-fields are empty.
type PortfolioRecord struct {
	Hero            Hero                `json:"hero"`
	About           About               `json:"about"`
	Skills          []string            `json:"skills"`
	SkillCategories map[string][]string `json:"skill_categories,omitempty"`
	Experience      []ExperienceEntry   `json:"experience"`
	Education       []EducationEntry    `json:"education"`
	Projects        []ProjectEntry      `json:"projects"`
	Certifications  []string            `json:"certifications"`
	Contact         ContactInfo         `json:"contact"`
}

// TranslateResponse mirrors the translation collaborator contract.
type TranslateResponse struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	DestLang   string `json:"dest_lang"`
}

// ConversionResult is the currency conversion payload. Rate is rounded to 4
// decimals, Converted to 2.
type ConversionResult struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}
