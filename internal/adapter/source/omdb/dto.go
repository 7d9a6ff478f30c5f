package omdb

// Wire shapes of the OMDb API. Every response carries Response "True" or
// "False"; on "False" the Error field holds the service's message.

// envelope is decoded first to decide which variant a body is
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// SearchResponse is the body of a title search (?s=)
type SearchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"` // string-encoded integer
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

// SearchItem is one summary inside a search response
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// RatingItem is one entry of the Ratings array
type RatingItem struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// DetailResponse is the body of a detail lookup (?i=&plot=full)
type DetailResponse struct {
	Title      string       `json:"Title"`
	Year       string       `json:"Year"`
	Rated      string       `json:"Rated"`
	Released   string       `json:"Released"`
	Runtime    string       `json:"Runtime"`
	Genre      string       `json:"Genre"`
	Director   string       `json:"Director"`
	Writer     string       `json:"Writer"`
	Actors     string       `json:"Actors"`
	Plot       string       `json:"Plot"`
	Language   string       `json:"Language"`
	Country    string       `json:"Country"`
	Awards     string       `json:"Awards"`
	Poster     string       `json:"Poster"`
	Ratings    []RatingItem `json:"Ratings"`
	Metascore  string       `json:"Metascore"`
	ImdbRating string       `json:"imdbRating"`
	ImdbVotes  string       `json:"imdbVotes"`
	ImdbID     string       `json:"imdbID"`
	Type       string       `json:"Type"`
	BoxOffice  string       `json:"BoxOffice"`
	Response   string       `json:"Response"`
	Error      string       `json:"Error"`
}

const (
	responseTrue  = "True"
	responseFalse = "False"

	// notAvailable is OMDb's placeholder for missing fields
	notAvailable = "N/A"
)
