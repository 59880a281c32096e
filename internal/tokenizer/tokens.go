// Package tokenizer provides Cookie field-value tokenization using Shape's
// tokenizer framework.
package tokenizer

// Token type constants for cookie lists.
//
//	cookie-list  = cookie-pair *( ";" SP cookie-pair )
//	cookie-pair  = cookie-name "=" cookie-value
//	cookie-value = *cookie-octet / ( DQUOTE *cookie-octet DQUOTE )
const (
	TokenSeparator = "Separator" // "; " between pairs
	TokenEquals    = "Equals"    // "=" after a name, or inside a value
	TokenQuoted    = "Quoted"    // DQUOTE *cookie-octet DQUOTE, quotes included
	TokenOctets    = "Octets"    // run of cookie-octets other than "="
)
