package rdfa

import "strings"

// extractLiteral decides the shape of the literal an element denotes,
// from its content/datatype/time/text.
//
//  1. An explicit datatype that is not one of the three special literal
//     markers (rdf:XMLLiteral, rdf:HTML, rdf:PlainLiteral): the literal's
//     value is the content attribute if present, else the element's own
//     text, tagged with that datatype.
//  2. No datatype, but a content attribute: a plain literal, language
//     tagged if one is in scope. Datetime-pattern inference does not apply
//     here — only to (3) below.
//  3. No datatype, no content, but a <time>/datetime value: the datetime
//     value, datatype-tagged by pattern match, falling back to a plain
//     literal if nothing matches.
//  4. rdf:PlainLiteral datatype: handled as if no datatype were given
//     (rows 2, 3 and 6); the special marker itself is never emitted as a
//     datatype.
//  5. rdf:XMLLiteral / rdf:HTML datatype: the element's inner HTML,
//     tagged with that literal datatype (no datetime inference).
//  6. Otherwise: the concatenation of the element's non-empty text
//     children, plain-literal rules as in (2).
func extractLiteral(ctx Context, v *elementView) Literal {
	if v.hasDatatype && v.datatype != "" {
		dt, err := resolveURI(ctx, v.datatype, false)
		if err == nil && isSpecialDatatype(dt) && !isPlainLiteralDatatype(dt) {
			return Literal{Value: v.el.InnerHTML(), Datatype: dt}
		}
		if err == nil && !isSpecialDatatype(dt) {
			value := v.content
			if !v.hasContent {
				value = v.el.Text()
			}
			return Literal{Value: value, Datatype: dt}
		}
	}

	if v.hasContent {
		return plainLiteral(ctx, v.content)
	}

	// Datetime-pattern inference only applies to the
	// time/datetime row of the table — not to content or the plain-text
	// fallback below.
	if t, ok := v.getTime(); ok {
		return datetimeLiteral(ctx, t)
	}

	return plainLiteral(ctx, strings.Join(v.texts(), ""))
}

// datetimeLiteral returns a literal for value, datatype-tagged by
// anchored pattern match, falling back to a plain literal if nothing
// matches.
func datetimeLiteral(ctx Context, value string) Literal {
	if dt := dateTimeFromPattern(value); dt != nil {
		return Literal{Value: value, Datatype: dt}
	}
	return plainLiteral(ctx, value)
}

// plainLiteral returns a plain literal for value, language-tagged from ctx
// if one is in scope.
func plainLiteral(ctx Context, value string) Literal {
	l := NewLiteral(value)
	if ctx.Lang != "" {
		l = l.WithLang(ctx.Lang)
	}
	return l
}
