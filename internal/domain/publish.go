package domain

// PagePost é o conteúdo publicado no feed de uma página.
// Com ImageURL a publicação vai para /photos, senão para /feed.
type PagePost struct {
	Message  string
	Link     string
	ImageURL string
}

const (
	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
	MediaTypeReels = "REELS"
)

// InstagramContent é a mídia publicada em uma conta profissional do Instagram
type InstagramContent struct {
	ImageURL  string
	VideoURL  string
	Caption   string
	MediaType string
}
