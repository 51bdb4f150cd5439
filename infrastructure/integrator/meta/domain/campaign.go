package metadomain

type Campaign struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status,omitempty"`
	EffectiveStatus string        `json:"effective_status,omitempty"`
	Objective       string        `json:"objective,omitempty"`
	DailyBudget     string        `json:"daily_budget,omitempty"`
	LifetimeBudget  string        `json:"lifetime_budget,omitempty"`
	BudgetRemaining string        `json:"budget_remaining,omitempty"`
	StartTime       string        `json:"start_time,omitempty"`
	StopTime        string        `json:"stop_time,omitempty"`
	CreatedTime     string        `json:"created_time,omitempty"`
	Insights        *InsightsEdge `json:"insights,omitempty"`
}

type AdSet struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Status           string        `json:"status,omitempty"`
	EffectiveStatus  string        `json:"effective_status,omitempty"`
	CampaignID       string        `json:"campaign_id,omitempty"`
	DailyBudget      string        `json:"daily_budget,omitempty"`
	LifetimeBudget   string        `json:"lifetime_budget,omitempty"`
	OptimizationGoal string        `json:"optimization_goal,omitempty"`
	BillingEvent     string        `json:"billing_event,omitempty"`
	StartTime        string        `json:"start_time,omitempty"`
	EndTime          string        `json:"end_time,omitempty"`
	Insights         *InsightsEdge `json:"insights,omitempty"`
}

type Creative struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

type Ad struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status,omitempty"`
	EffectiveStatus string        `json:"effective_status,omitempty"`
	AdSetID         string        `json:"adset_id,omitempty"`
	CampaignID      string        `json:"campaign_id,omitempty"`
	Creative        *Creative     `json:"creative,omitempty"`
	CreatedTime     string        `json:"created_time,omitempty"`
	Insights        *InsightsEdge `json:"insights,omitempty"`
}

type NamedRef struct {
	Name string `json:"name"`
}

type CampaignRef struct {
	Name      string `json:"name"`
	AccountID string `json:"account_id"`
}

// AdDetail é o retorno bruto de GET /{ad-id} com campanha, conjunto e criativo expandidos
type AdDetail struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Campaign *CampaignRef `json:"campaign,omitempty"`
	AdSet    *NamedRef    `json:"adset,omitempty"`
	Creative *Creative    `json:"creative,omitempty"`
}

// AdSummary é o formato devolvido por get-ad-by-id
type AdSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Campaign     *NamedRef `json:"campaign"`
	AdSet        *NamedRef `json:"adset"`
	ThumbnailURL *string   `json:"thumbnail_url"`
}
