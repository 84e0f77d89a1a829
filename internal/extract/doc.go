// Package extract derives structured facts from a show folder's note blob
// and name: date, venue/city/country, event, setlist, lineage, generation,
// recording type, and artist identity.
//
// Every extractor is a pure function of its inputs and degrades to an empty
// result rather than an error. The layered heuristics (location, artist,
// setlist) run as ordered strategy chains where the first success wins, and
// successful tiers report a hint tag the scanner records as an audit warning.
package extract
