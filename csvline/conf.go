package csvline

import (
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/go-csvsplit/csvsplit/errors"
	"github.com/go-csvsplit/csvsplit/internal/util"
)

// Conf configures quote-aware reading of delimited text
type Conf struct {
	Delimiter rune // The character quoting a field. Cannot be equal to the Separator. Defaults to "
	Separator rune // The character separating fields within a record. Cannot be equal to the Delimiter. Defaults to ,
}

// Validate applies defaults to unset characters and checks that the resulting
// configuration is usable: delimiter and separator must each be a single-byte
// character and must be distinct from one another. Every violation is
// reported, aggregated into a single error.
func (c *Conf) Validate() error {
	if c.Delimiter == 0 {
		c.Delimiter = '"'
	}
	if c.Separator == 0 {
		c.Separator = ','
	}
	var result *multierror.Error
	if utf8.RuneLen(c.Delimiter) != 1 {
		result = multierror.Append(result, errors.InvalidCharacterError{Name: "delimiter", Value: c.Delimiter})
	}
	if utf8.RuneLen(c.Separator) != 1 {
		result = multierror.Append(result, errors.InvalidCharacterError{Name: "separator", Value: c.Separator})
	}
	if c.Delimiter == c.Separator {
		result = multierror.Append(result, errors.CharacterCollisionError{Character: c.Delimiter})
	}
	if result != nil {
		result.ErrorFormat = util.FormatMultiError
		return result
	}
	return nil
}
