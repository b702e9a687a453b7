package server

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/voyago/tagserve/pkg/config"
	"github.com/voyago/tagserve/pkg/label"
)

// Server handles the IPC for tag and destination lookups.
type Server struct {
	manager *label.Manager
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	flush   func() error
}

// NewServer creates an IPC server bound to the given reader/writer pair.
// Production callers pass stdin/stdout; tests pass pipes.
func NewServer(manager *label.Manager, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	srv := &Server{
		manager: manager,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		encoder: msgpack.NewEncoder(bw),
	}
	srv.flush = bw.Flush
	return srv
}

// Start begins the request loop. It returns nil on clean EOF and the
// underlying error otherwise.
func (s *Server) Start() error {
	log.Debug("Starting IPC server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "complete_tags":
		s.handleCompleteTags(request)
	case "search_destinations":
		s.handleSearchDestinations(request)
	case "tags_by_category":
		s.handleTagsByCategory(request)
	case "add_tag":
		s.handleAddTag(request)
	case "add_destination":
		s.handleAddDestination(request)
	case "export_tags":
		s.handleExport(request)
	case "import_tags":
		s.handleImport(request)
	case "stats":
		s.handleStats(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// language coerces the request language, degrading to the configured default
// when the code is unknown. The strict path lives in the engine's import.
func (s *Server) language(code string) label.Language {
	if code == "" {
		code = s.cfg.Search.DefaultLanguage
	}
	lang, err := label.ParseLanguage(code)
	if err != nil {
		log.Debugf("Falling back to default language: %v", err)
		if fallback, ferr := label.ParseLanguage(s.cfg.Search.DefaultLanguage); ferr == nil {
			return fallback
		}
		return label.DefaultLanguage
	}
	return lang
}

// limit clamps a requested result count to the configured ceiling.
func (s *Server) limit(requested, fallback int) int {
	if requested < 1 {
		requested = fallback
	}
	if s.cfg.Server.MaxLimit > 0 && requested > s.cfg.Server.MaxLimit {
		requested = s.cfg.Server.MaxLimit
	}
	return requested
}

func (s *Server) handleCompleteTags(request Request) {
	if len(request.Prefix) < s.cfg.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		return
	}
	if s.cfg.Server.MaxPrefix > 0 && len(request.Prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		return
	}

	lang := s.language(request.Language)
	limit := s.limit(request.Limit, 10)

	start := time.Now()
	tags := s.manager.SearchTagsByPrefix(request.Prefix, lang, limit)
	elapsed := time.Since(start)

	results := make([]TagResult, len(tags))
	for i, tag := range tags {
		results[i] = tagResult(tag, lang)
	}
	s.send(TagsResponse{
		ID:        request.ID,
		Tags:      results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleSearchDestinations(request Request) {
	if len(request.Queries) == 0 {
		s.sendError(request.ID, "Missing 'q' query terms", 400)
		return
	}

	lang := s.language(request.Language)
	limit := s.limit(request.Limit, s.cfg.Search.DefaultLimit)
	minScore := s.cfg.Search.MinMatchScore
	if request.MinScore != nil {
		minScore = *request.MinScore
	}

	start := time.Now()
	matches := s.manager.SearchDestinationsByTags(request.Queries, lang, minScore, limit)
	elapsed := time.Since(start)

	results := make([]DestinationResult, len(matches))
	for i, match := range matches {
		results[i] = destinationResult(match, lang)
	}
	s.send(DestinationsResponse{
		ID:           request.ID,
		Destinations: results,
		Count:        len(results),
		TimeTaken:    elapsed.Microseconds(),
	})
}

func (s *Server) handleTagsByCategory(request Request) {
	category, err := label.ParseCategory(request.Category)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	lang := s.language(request.Language)

	start := time.Now()
	tags := s.manager.TagsByCategory(category)
	elapsed := time.Since(start)

	results := make([]TagResult, len(tags))
	for i, tag := range tags {
		results[i] = tagResult(tag, lang)
	}
	s.send(TagsResponse{
		ID:        request.ID,
		Tags:      results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleAddTag(request Request) {
	if request.Tag == nil || request.Tag.ID == "" {
		s.sendError(request.ID, "Missing 'tag' payload", 400)
		return
	}
	tag, err := decodeTagPayload(request.Tag)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	s.manager.AddTag(tag)
	s.send(StatusResponse{ID: request.ID, Status: "ok", Message: fmt.Sprintf("tag %q registered", tag.ID)})
}

func (s *Server) handleAddDestination(request Request) {
	if request.Destination == nil || request.Destination.ID == "" {
		s.sendError(request.ID, "Missing 'dest' payload", 400)
		return
	}
	s.manager.AddDestination(decodeDestinationPayload(request.Destination))
	s.send(StatusResponse{ID: request.ID, Status: "ok", Message: fmt.Sprintf("destination %q added", request.Destination.ID)})
}

func (s *Server) handleExport(request Request) {
	if request.Path == "" {
		s.sendError(request.ID, "Missing 'path' parameter", 400)
		return
	}
	if err := s.manager.ExportTags(request.Path); err != nil {
		log.Errorf("Export failed: %v", err)
		s.sendError(request.ID, err.Error(), 500)
		return
	}
	s.send(StatusResponse{ID: request.ID, Status: "ok", Message: fmt.Sprintf("tags exported to %s", request.Path)})
}

func (s *Server) handleImport(request Request) {
	if request.Path == "" {
		s.sendError(request.ID, "Missing 'path' parameter", 400)
		return
	}
	if err := s.manager.ImportTags(request.Path); err != nil {
		log.Errorf("Import failed: %v", err)
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	s.send(StatusResponse{ID: request.ID, Status: "ok", Message: fmt.Sprintf("tags imported from %s", request.Path)})
}

func (s *Server) handleStats(request Request) {
	stats := s.manager.Stats()
	langs := make([]string, len(stats.Languages))
	for i, l := range stats.Languages {
		langs[i] = string(l)
	}
	cats := make([]string, 0, len(label.Categories()))
	for _, c := range label.Categories() {
		cats = append(cats, string(c))
	}
	s.send(StatsResponse{
		ID:           request.ID,
		Tags:         stats.Tags,
		Destinations: stats.Destinations,
		Languages:    langs,
		Categories:   cats,
	})
}

// send encodes a response onto the stream and flushes it.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.flush(); err != nil {
		log.Errorf("Flushing response: %v", err)
	}
}

// sendError sends an error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// tagResult resolves a tag for the response language.
func tagResult(tag *label.Tag, lang label.Language) TagResult {
	return TagResult{
		ID:          tag.ID,
		Name:        tag.Name(lang),
		Category:    string(tag.Category),
		Description: tag.Description[lang],
		Synonyms:    tag.AllNames(lang),
		Weight:      tag.Weight,
	}
}

// destinationResult flattens a match for the wire.
func destinationResult(match label.Match, lang label.Language) DestinationResult {
	dest := match.Destination
	names := make(map[string]string, len(dest.Names))
	for l, name := range dest.Names {
		names[string(l)] = name
	}
	result := DestinationResult{
		ID:                  dest.ID,
		Name:                dest.Name(lang),
		Names:               names,
		CountryCode:         dest.CountryCode,
		AdministrativeLevel: dest.AdministrativeLevel,
		MatchedTags:         dest.Tags,
		MatchScore:          match.Score,
		Metadata:            dest.Metadata,
	}
	if dest.Coordinates != nil {
		result.Coordinates = map[string]float64{"lat": dest.Coordinates.Lat, "lng": dest.Coordinates.Lng}
	}
	return result
}

// decodeTagPayload coerces a wire tag strictly: unknown category or language
// codes are rejected so the registry never indexes a half-valid record.
func decodeTagPayload(payload *TagPayload) (*label.Tag, error) {
	category, err := label.ParseCategory(payload.Category)
	if err != nil {
		return nil, err
	}
	tag := &label.Tag{
		ID:       payload.ID,
		Category: category,
		Weight:   payload.Weight,
		ParentID: payload.ParentID,
	}
	if tag.Weight == 0 {
		tag.Weight = 1.0
	}
	if len(payload.Synonyms) > 0 {
		tag.Synonyms = make(map[label.Language][]string, len(payload.Synonyms))
		for code, syns := range payload.Synonyms {
			lang, err := label.ParseLanguage(code)
			if err != nil {
				return nil, err
			}
			tag.Synonyms[lang] = syns
		}
	}
	if len(payload.Description) > 0 {
		tag.Description = make(map[label.Language]string, len(payload.Description))
		for code, desc := range payload.Description {
			lang, err := label.ParseLanguage(code)
			if err != nil {
				return nil, err
			}
			tag.Description[lang] = desc
		}
	}
	return tag, nil
}

// decodeDestinationPayload coerces a wire destination. Names under unknown
// language codes are skipped rather than rejected; dangling tag ids are the
// store's documented ignorable case.
func decodeDestinationPayload(payload *DestinationPayload) *label.Destination {
	dest := &label.Destination{
		ID:                  payload.ID,
		CountryCode:         payload.CountryCode,
		AdministrativeLevel: payload.AdministrativeLevel,
		Tags:                payload.Tags,
		Metadata:            payload.Metadata,
	}
	if len(payload.Names) > 0 {
		dest.Names = make(map[label.Language]string, len(payload.Names))
		for code, name := range payload.Names {
			lang, err := label.ParseLanguage(code)
			if err != nil {
				log.Debugf("Skipping destination name: %v", err)
				continue
			}
			dest.Names[lang] = name
		}
	}
	if lat, ok := payload.Coordinates["lat"]; ok {
		if lng, ok := payload.Coordinates["lng"]; ok {
			dest.Coordinates = &label.Coordinates{Lat: lat, Lng: lng}
		}
	}
	return dest
}
