package assets

import (
	"fmt"
	"regexp"
)

// assetNamePattern allows lower-case letters, digits, '-' and '_'. Anything
// else, separators and dots included, could reach outside templates/.
var assetNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidateAssetName reports ErrInvalidAssetName for names that are not a
// plain template file stem.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
