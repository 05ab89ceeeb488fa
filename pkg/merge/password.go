package merge

// Unlocker is the decrypt capability of a decoded document.
type Unlocker interface {
	Unlock(password string) bool
}

// PromptFunc asks the user for a password for the named document. A nil
// PromptFunc disables interactive prompting entirely.
type PromptFunc func(name string) (string, error)

// PasswordCandidates builds the ordered candidate list for one
// document: the shared default first, then the per-document override
// when present and distinct. Empty entries are dropped.
func PasswordCandidates(defaultPassword, override string) []string {
	var candidates []string
	if defaultPassword != "" {
		candidates = append(candidates, defaultPassword)
	}
	if override != "" && override != defaultPassword {
		candidates = append(candidates, override)
	}
	return candidates
}

// ResolvePassword tries each candidate in order, then prompts once when
// allowed. An empty answer or a prompt error stops resolution. Returns
// whether the document ended up unlocked.
func ResolvePassword(doc Unlocker, name string, candidates []string, prompt PromptFunc) bool {
	for _, password := range candidates {
		if doc.Unlock(password) {
			return true
		}
	}
	if prompt == nil {
		return false
	}
	password, err := prompt(name)
	if err != nil || password == "" {
		return false
	}
	return doc.Unlock(password)
}
