/*
Package server implements msgpack IPC for the destination tag engine.

The server reads a stream of msgpack-encoded requests from stdin and writes
one msgpack-encoded response per request to stdout. msgpack frames are
self-delimiting, so no extra framing layer is needed; logs go to stderr so
the stdout stream stays clean.

# Commands

Every request carries an id, a command, and the fields that command uses:

	{"id": "t1", "cmd": "complete_tags", "p": "bea", "lang": "en", "l": 10}
	{"id": "d1", "cmd": "search_destinations", "q": ["historical", "beach"], "lang": "en", "min": 0.3, "l": 20}
	{"id": "c1", "cmd": "tags_by_category", "cat": "scenery", "lang": "en"}
	{"id": "a1", "cmd": "add_destination", "dest": {...}}
	{"id": "a2", "cmd": "add_tag", "tag": {...}}
	{"id": "x1", "cmd": "export_tags", "path": "tags.json"}
	{"id": "x2", "cmd": "import_tags", "path": "tags.json"}
	{"id": "s1", "cmd": "stats"}
	{"id": "h1", "cmd": "health"}

Unknown language codes in queries degrade to the configured default language;
the engine's import path stays strict and surfaces decode errors verbatim.
Responses include the request id and elapsed microseconds for search commands.
*/
package server

// Request is the envelope for every incoming IPC message. Only the fields
// relevant to the command need to be set.
type Request struct {
	ID          string              `msgpack:"id"`
	Command     string              `msgpack:"cmd"`
	Prefix      string              `msgpack:"p,omitempty"`
	Queries     []string            `msgpack:"q,omitempty"`
	Language    string              `msgpack:"lang,omitempty"`
	Category    string              `msgpack:"cat,omitempty"`
	Limit       int                 `msgpack:"l,omitempty"`
	MinScore    *float64            `msgpack:"min,omitempty"`
	Path        string              `msgpack:"path,omitempty"`
	Tag         *TagPayload         `msgpack:"tag,omitempty"`
	Destination *DestinationPayload `msgpack:"dest,omitempty"`
}

// TagPayload is the wire shape of a tag: language and category codes stay raw
// strings and are coerced at the boundary.
type TagPayload struct {
	ID          string              `msgpack:"id"`
	Category    string              `msgpack:"category"`
	Synonyms    map[string][]string `msgpack:"synonyms,omitempty"`
	Description map[string]string   `msgpack:"description,omitempty"`
	Weight      float64             `msgpack:"weight,omitempty"`
	ParentID    string              `msgpack:"parent_id,omitempty"`
}

// DestinationPayload is the wire shape of a destination.
type DestinationPayload struct {
	ID                  string             `msgpack:"id"`
	Names               map[string]string  `msgpack:"names,omitempty"`
	Coordinates         map[string]float64 `msgpack:"coordinates,omitempty"`
	CountryCode         string             `msgpack:"country_code,omitempty"`
	AdministrativeLevel string             `msgpack:"administrative_level,omitempty"`
	Tags                map[string]float64 `msgpack:"tags,omitempty"`
	Metadata            map[string]any     `msgpack:"metadata,omitempty"`
}

// TagResult is one tag in a search or category response, resolved for the
// request language.
type TagResult struct {
	ID          string   `msgpack:"id"`
	Name        string   `msgpack:"name"`
	Category    string   `msgpack:"category"`
	Description string   `msgpack:"description,omitempty"`
	Synonyms    []string `msgpack:"synonyms,omitempty"`
	Weight      float64  `msgpack:"weight"`
}

// TagsResponse answers complete_tags and tags_by_category.
type TagsResponse struct {
	ID        string      `msgpack:"id"`
	Tags      []TagResult `msgpack:"tags"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// DestinationResult is one ranked destination.
type DestinationResult struct {
	ID                  string             `msgpack:"id"`
	Name                string             `msgpack:"name"`
	Names               map[string]string  `msgpack:"names,omitempty"`
	Coordinates         map[string]float64 `msgpack:"coordinates,omitempty"`
	CountryCode         string             `msgpack:"country_code,omitempty"`
	AdministrativeLevel string             `msgpack:"administrative_level,omitempty"`
	MatchedTags         map[string]float64 `msgpack:"matched_tags,omitempty"`
	MatchScore          float64            `msgpack:"match_score"`
	Metadata            map[string]any     `msgpack:"metadata,omitempty"`
}

// DestinationsResponse answers search_destinations.
type DestinationsResponse struct {
	ID           string              `msgpack:"id"`
	Destinations []DestinationResult `msgpack:"destinations"`
	Count        int                 `msgpack:"c"`
	TimeTaken    int64               `msgpack:"t"`
}

// StatusResponse answers mutations, transfers and health checks.
type StatusResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Message string `msgpack:"message,omitempty"`
}

// StatsResponse answers the stats command.
type StatsResponse struct {
	ID           string   `msgpack:"id"`
	Tags         int      `msgpack:"tags"`
	Destinations int      `msgpack:"destinations"`
	Languages    []string `msgpack:"languages"`
	Categories   []string `msgpack:"categories"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
