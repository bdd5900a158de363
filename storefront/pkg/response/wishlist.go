package response

type Wishlist struct {
	Entries []Product `json:"entries"`
	Count   int       `json:"count"`
}
