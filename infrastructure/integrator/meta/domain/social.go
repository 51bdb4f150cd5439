package metadomain

type InstagramAccount struct {
	ID                string `json:"id"`
	Username          string `json:"username,omitempty"`
	Name              string `json:"name,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	FollowersCount    int    `json:"followers_count,omitempty"`
	MediaCount        int    `json:"media_count,omitempty"`
	PageID            string `json:"page_id,omitempty"`
	PageName          string `json:"page_name,omitempty"`
}

// FacebookPage carrega o access_token da página só para uso interno;
// o integrador limpa o campo antes de devolver.
type FacebookPage struct {
	ID                       string            `json:"id"`
	Name                     string            `json:"name"`
	Category                 string            `json:"category,omitempty"`
	AccessToken              string            `json:"access_token,omitempty"`
	FanCount                 int               `json:"fan_count,omitempty"`
	Picture                  *PictureEdge      `json:"picture,omitempty"`
	InstagramBusinessAccount *InstagramAccount `json:"instagram_business_account,omitempty"`
}

type PictureEdge struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

type SummaryEdge struct {
	Summary struct {
		TotalCount int `json:"total_count"`
	} `json:"summary"`
}

type Post struct {
	ID           string       `json:"id"`
	Message      string       `json:"message,omitempty"`
	CreatedTime  string       `json:"created_time"`
	FullPicture  string       `json:"full_picture,omitempty"`
	PermalinkURL string       `json:"permalink_url,omitempty"`
	StatusType   string       `json:"status_type,omitempty"`
	Shares       *struct {
		Count int `json:"count"`
	} `json:"shares,omitempty"`
	Reactions *SummaryEdge `json:"reactions,omitempty"`
	Comments  *SummaryEdge `json:"comments,omitempty"`
}

type Media struct {
	ID            string `json:"id"`
	Caption       string `json:"caption,omitempty"`
	MediaType     string `json:"media_type,omitempty"`
	MediaURL      string `json:"media_url,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	Permalink     string `json:"permalink,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
}
