package dictionary

// The entry types describe the upstream document for OpenAPI only. Bodies are relayed
// unchanged, so every schema stays open to fields the upstream adds.

// DictionaryData is a single dictionary entry as returned by the upstream service.
type DictionaryData struct {
	_          struct{}   `json:"-"                    additionalProperties:"true"`
	Word       string     `json:"word"                 doc:"Headword"                           example:"hello"`
	Phonetic   string     `json:"phonetic,omitempty"   doc:"Primary phonetic transcription"     example:"/həˈləʊ/"`
	Phonetics  []Phonetic `json:"phonetics,omitempty"  doc:"Phonetic transcriptions"`
	Origin     string     `json:"origin,omitempty"     doc:"Etymology"`
	Meanings   []Meaning  `json:"meanings"             doc:"Meanings grouped by part of speech"`
	License    *License   `json:"license,omitempty"    doc:"License of the entry content"`
	SourceURLs []string   `json:"sourceUrls,omitempty" doc:"Pages the entry was compiled from"`
}

// Phonetic is one pronunciation of a word.
type Phonetic struct {
	_         struct{} `json:"-"                   additionalProperties:"true"`
	Text      string   `json:"text,omitempty"      doc:"IPA transcription"       example:"/həˈləʊ/"`
	Audio     string   `json:"audio,omitempty"     doc:"Pronunciation audio URL" example:"https://api.dictionaryapi.dev/media/pronunciations/en/hello-uk.mp3"`
	SourceURL string   `json:"sourceUrl,omitempty" doc:"Source of the audio"     example:"https://commons.wikimedia.org/w/index.php?curid=9021983"`
	License   *License `json:"license,omitempty"   doc:"License of the audio"`
}

// Meaning groups definitions for a part of speech.
type Meaning struct {
	_            struct{}     `json:"-"                  additionalProperties:"true"`
	PartOfSpeech string       `json:"partOfSpeech"       doc:"Part of speech"                      example:"interjection"`
	Definitions  []Definition `json:"definitions"        doc:"Definitions for this part of speech"`
	Synonyms     []string     `json:"synonyms,omitempty" doc:"Synonyms for this part of speech"`
	Antonyms     []string     `json:"antonyms,omitempty" doc:"Antonyms for this part of speech"`
}

// Definition is a single sense of a word.
type Definition struct {
	_          struct{} `json:"-"                  additionalProperties:"true"`
	Definition string   `json:"definition"         doc:"Definition text" example:"A greeting (salutation) said when meeting someone."`
	Example    string   `json:"example,omitempty"  doc:"Usage example"   example:"Hello, everyone."`
	Synonyms   []string `json:"synonyms,omitempty" doc:"Synonyms"`
	Antonyms   []string `json:"antonyms,omitempty" doc:"Antonyms"`
}

// License names the license of upstream content.
type License struct {
	_    struct{} `json:"-"             additionalProperties:"true"`
	Name string   `json:"name"          doc:"License name" example:"CC BY-SA 3.0"`
	URL  string   `json:"url,omitempty" doc:"License URL"  example:"https://creativecommons.org/licenses/by-sa/3.0"`
}

// LookupFailure is the body returned when the upstream lookup fails.
type LookupFailure struct {
	Message string `json:"message" doc:"Failure message" example:"Failed to retrieve data"`
}
