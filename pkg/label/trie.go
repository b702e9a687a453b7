package label

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// idSet is the item stored at each trie key. Different tags sharing an
// identical synonym spelling collapse into the same set.
type idSet map[string]struct{}

// synonymKey identifies one trie entry a tag contributed, so a re-add can
// retract the previous version before indexing the new one.
type synonymKey struct {
	lang Language
	text string // lowercased synonym
}

// prefixIndex holds one patricia trie per language. Keys are lowercased
// synonyms; character prefixes and byte prefixes coincide under UTF-8, so the
// radix structure gives the same reachable set as a per-character trie.
type prefixIndex struct {
	tries map[Language]*patricia.Trie
}

func newPrefixIndex() *prefixIndex {
	return &prefixIndex{tries: make(map[Language]*patricia.Trie)}
}

// insert adds tagID under the lowered synonym for lang, creating the
// language trie on first use.
func (px *prefixIndex) insert(lang Language, lowered, tagID string) {
	trie, ok := px.tries[lang]
	if !ok {
		trie = patricia.NewTrie()
		px.tries[lang] = trie
	}
	if item := trie.Get(patricia.Prefix(lowered)); item != nil {
		item.(idSet)[tagID] = struct{}{}
		return
	}
	trie.Insert(patricia.Prefix(lowered), idSet{tagID: {}})
}

// remove retracts tagID from the lowered synonym for lang, dropping the trie
// key entirely once no tag terminates there.
func (px *prefixIndex) remove(lang Language, lowered, tagID string) {
	trie, ok := px.tries[lang]
	if !ok {
		return
	}
	item := trie.Get(patricia.Prefix(lowered))
	if item == nil {
		return
	}
	ids := item.(idSet)
	delete(ids, tagID)
	if len(ids) == 0 {
		trie.Delete(patricia.Prefix(lowered))
	}
}

// collect returns the union of tag ids reachable from lowered in the trie for
// lang: the matched node plus its whole subtree. An unknown language or an
// unmatched prefix yields an empty set, never an error. The empty prefix
// reaches every synonym indexed for the language.
func (px *prefixIndex) collect(lang Language, lowered string) idSet {
	trie, ok := px.tries[lang]
	if !ok {
		return idSet{}
	}

	result := idSet{}
	err := trie.VisitSubtree(patricia.Prefix(lowered), func(p patricia.Prefix, item patricia.Item) error {
		ids, ok := item.(idSet)
		if !ok {
			log.Errorf("Unknown item type: %T at key %s", item, p)
			return nil
		}
		for id := range ids {
			result[id] = struct{}{}
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return result
}

// languages reports which languages currently have a trie.
func (px *prefixIndex) languages() []Language {
	langs := make([]Language, 0, len(px.tries))
	for _, l := range Languages() {
		if _, ok := px.tries[l]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}
