// Vfxnaming manages naming conventions for digital assets: reusable
// token vocabularies, underscore-joined naming rules, and session
// repositories that teams share on disk, in sqlite or through git.
//
// Usage:
//
//	# Register tokens and a rule, then persist them
//	vfxnaming token add side --option left=L --option right=R
//	vfxnaming rule add asset category name side version
//	vfxnaming session save
//
//	# Build and invert names with the active rule
//	vfxnaming solve --set side=left hero 25
//	vfxnaming parse char_hero_L_v025
//
//	# Keep a long-running session in sync with repository edits
//	vfxnaming watch
//
// For complete documentation, see: https://github.com/obrakeo/vfxnaming
package main

func main() {
	Execute()
}
