package rdfa

import "regexp"

// RDF/RDFa vocabulary constants used throughout the engine.
const (
	rdfaCopyPredicate   = "http://www.w3.org/ns/rdfa#copy"
	rdfaPatternType     = "http://www.w3.org/ns/rdfa#Pattern"
	rdfaUsesVocabulary  = "http://www.w3.org/ns/rdfa#usesVocabulary"
	rdfXMLLiteral       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#XMLLiteral"
	rdfHTMLLiteral      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#HTML"
	rdfPlainLiteral     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral"
	xsdString           = "http://www.w3.org/2001/XMLSchema#string"
	rdfType             = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfFirst            = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	rdfRest             = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	rdfNil              = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
	defaultWellKnownPfx = "http://data.lblod.info/.well-known/genid#"
)

var (
	nodeRDFType            = IRI{rdfType}
	nodeRDFFirst           = IRI{rdfFirst}
	nodeRDFRest            = IRI{rdfRest}
	nodeRDFNil             = IRI{rdfNil}
	nodeRDFAUsesVocabulary = IRI{rdfaUsesVocabulary}
	nodeRDFAPatternType    = IRI{rdfaPatternType}
	nodeRDFACopyPredicate  = IRI{rdfaCopyPredicate}
	nodeXSDString          = IRI{xsdString}
	nodeRDFHTMLLiteral     = IRI{rdfHTMLLiteral}
	nodeRDFXMLLiteral      = IRI{rdfXMLLiteral}
	nodeRDFPlainLiteral    = IRI{rdfPlainLiteral}
)

// reservedKeywords are resolved to a fixed term IRI when no CURIE, base or
// vocab match applies.
var reservedKeywords = map[string]struct{}{
	"license":     {},
	"describedby": {},
	"role":        {},
}

// commonPrefixes is the table of well-known CURIE prefixes plus the
// singleton reserved-keyword term mappings.
var commonPrefixes = map[string]string{
	"":        "http://www.w3.org/1999/xhtml/vocab#",
	"gradl":   "http://www.w3.org/2003/g/data-view#",
	"ma":      "http://www.w3.org/ns/ma-ont#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfa":    "http://www.w3.org/ns/rdfa#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"rif":     "http://www.w3.org/2007/rif#",
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"skosxl":  "http://www.w3.org/2008/05/skos-xl#",
	"wdr":     "http://www.w3.org/2007/05/powder#",
	"void":    "http://rdfs.org/ns/void#",
	"wdrs":    "http://www.w3.org/2007/05/powder-s#",
	"xhv":     "http://www.w3.org/1999/xhtml/vocab#",
	"xml":     "http://www.w3.org/XML/1998/namespace",
	"xsd":     "http://www.w3.org/2001/XMLSchema#",
	"prov":    "http://www.w3.org/ns/prov#",
	"rr":      "http://www.w3.org/ns/r2rml#",
	"sd":      "http://www.w3.org/ns/sparql-service-description#",
	"org":     "http://www.w3.org/ns/org#",
	"gldp":    "http://www.w3.org/ns/people#",
	"cnt":     "http://www.w3.org/2008/content#",
	"dcat":    "http://www.w3.org/ns/dcat#",
	"earl":    "http://www.w3.org/ns/earl#",
	"ht":      "http://www.w3.org/2006/http#",
	"ptr":     "http://www.w3.org/2009/pointers#",
	"cc":      "http://creativecommons.org/ns#",
	"ctag":    "http://commontag.org/ns#",
	"dc":      "http://purl.org/dc/terms/",
	"dcterms": "http://purl.org/dc/terms/",
	"foaf":    "http://xmlns.com/foaf/0.1/",
	"gr":      "http://purl.org/goodrelations/v1#",
	"ical":    "http://www.w3.org/2002/12/cal/icaltzd#",
	"og":      "http://ogp.me/ns#",
	"qb":      "http://purl.org/linked-data/cube#",
	"csvw":    "http://www.w3.org/ns/csvw#",
	"rev":     "http://purl.org/stuff/rev#",
	"grddl":   "http://www.w3.org/2003/g/data-view#",
	"sioc":    "http://rdfs.org/sioc/ns#",
	"v":       "http://rdf.data-vocabulary.org/#",
	"vcard":   "http://www.w3.org/2006/vcard/ns#",
	"schema":  "http://schema.org/",

	"describedby": "http://www.w3.org/2007/05/powder-s#describedby",
	"license":     "http://www.w3.org/1999/xhtml/vocab#license",
	"role":        "http://www.w3.org/1999/xhtml/vocab#role",
}

// specialSchemes are the URL-standard "special" schemes: those whose
// parsed form supports further relative resolution.
var specialSchemes = map[string]struct{}{
	"ftp":   {},
	"file":  {},
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
}

// datetimeTypePattern pairs an anchored, full-match regular expression
// with the XSD datatype it identifies.
type datetimeTypePattern struct {
	re       *regexp.Regexp
	datatype Term
}

var datetimeTypes = []datetimeTypePattern{
	{
		re:       regexp.MustCompile(`^-?P(?:[0-9]+Y)?(?:[0-9]+M)?(?:[0-9]+D)?(?:T(?:[0-9]+H)?(?:[0-9]+M)?(?:[0-9]+(?:\.[0-9]+)?S)?)?$`),
		datatype: IRI{"http://www.w3.org/2001/XMLSchema#duration"},
	},
	{
		re:       regexp.MustCompile(`^-?(?:[1-9][0-9][0-9][0-9]|0[1-9][0-9][0-9]|00[1-9][0-9]|000[1-9])-[0-9][0-9]-[0-9][0-9]T(?:[0-1][0-9]|2[0-4]):[0-5][0-9]:[0-5][0-9](?:\.[0-9]+)?(?:Z|[+\-][0-9][0-9]:[0-9][0-9])?$`),
		datatype: IRI{"http://www.w3.org/2001/XMLSchema#dateTime"},
	},
	{
		re:       regexp.MustCompile(`^-?(?:[1-9][0-9][0-9][0-9]|0[1-9][0-9][0-9]|00[1-9][0-9]|000[1-9])-[0-9][0-9]-[0-9][0-9](?:Z|[+\-][0-9][0-9]:[0-9][0-9])?$`),
		datatype: IRI{"http://www.w3.org/2001/XMLSchema#date"},
	},
	{
		re:       regexp.MustCompile(`^(?:[0-1][0-9]|2[0-4]):[0-5][0-9]:[0-5][0-9](?:\.[0-9]+)?(?:Z|[+\-][0-9][0-9]:[0-9][0-9])?$`),
		datatype: IRI{"http://www.w3.org/2001/XMLSchema#time"},
	},
	{
		re:       regexp.MustCompile(`^-?(?:[1-9][0-9][0-9][0-9]|0[1-9][0-9][0-9]|00[1-9][0-9]|000[1-9])-[0-9][0-9]$`),
		datatype: IRI{"http://www.w3.org/2001/XMLSchema#gYearMonth"},
	},
	{
		re:       regexp.MustCompile(`^-?(?:[1-9][0-9][0-9][0-9]|0[1-9][0-9][0-9]|00[1-9][0-9]|000[1-9])$`),
		datatype: IRI{"http://www.w3.org/2001/XMLSchema#gYear"},
	},
}

// dateTimeFromPattern returns the XSD datatype of the first pattern that
// fully matches value, trying patterns in the fixed order above, or nil if
// none match.
func dateTimeFromPattern(value string) Term {
	for _, p := range datetimeTypes {
		if p.re.MatchString(value) {
			return p.datatype
		}
	}
	return nil
}

// isReservedKeyword reports whether lowered names one of the reserved
// keywords. The lookup is exact; callers lowercase the reference first to
// get a case-insensitive match.
func isReservedKeyword(lowered string) bool {
	_, ok := reservedKeywords[lowered]
	return ok
}

// isSpecialDatatype reports whether dt is one of the three special
// literal markers that bypass ordinary literal extraction.
func isSpecialDatatype(dt Term) bool {
	if dt == nil {
		return false
	}
	switch textOf(dt) {
	case rdfXMLLiteral, rdfHTMLLiteral, rdfPlainLiteral:
		return true
	default:
		return false
	}
}

func isPlainLiteralDatatype(dt Term) bool {
	return dt != nil && textOf(dt) == rdfPlainLiteral
}
