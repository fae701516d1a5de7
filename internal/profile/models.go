package profile

// Profile is the per-user document the dashboard reads: an optional display
// name and the set of bookmarked hike ids. A user without a profile row is a
// valid empty profile.
type Profile struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Bookmarks []string `json:"bookmarks"`
}

const (
	IconBookmarked    = "bookmark"
	IconNotBookmarked = "bookmark_border"
)

// BookmarkIcon maps membership to the card icon state.
func BookmarkIcon(bookmarked bool) string {
	if bookmarked {
		return IconBookmarked
	}
	return IconNotBookmarked
}

// Bookmarked reports membership of hikeID in the profile's bookmark set.
func (p Profile) Bookmarked(hikeID string) bool {
	for _, id := range p.Bookmarks {
		if id == hikeID {
			return true
		}
	}
	return false
}

// DisplayName resolves the greeting name: profile name first, then the
// auth-provided display name, then the auth email.
func DisplayName(profileName, authName, authEmail string) string {
	if profileName != "" {
		return profileName
	}
	if authName != "" {
		return authName
	}
	return authEmail
}
