// Package xsd exports Terms naming the XML Schema built-in datatypes the
// engine tags literals with. A convenience package for consumers; the
// engine itself does not import it.
package xsd

import rdfa "github.com/nbittich/graph-rdfa-processor"

// The XML schema built-in datatypes (xsd):
// https://dvcs.w3.org/hg/rdf/raw-file/default/rdf-concepts/index.html#xsd-datatypes
var (
	// Core types:

	String  = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#string"}
	Boolean = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#boolean"}
	Decimal = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#decimal"}
	Integer = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"}

	// IEEE floating-point numbers:

	Double = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#double"}
	Float  = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#float"}

	// Time and date:

	Date          = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#date"}
	Time          = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#time"}
	DateTime      = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#dateTime"}
	DateTimeStamp = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#dateTimeStamp"}

	// Recurring and partial dates:

	Year              = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#gYear"}
	Month             = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#gMonth"}
	Day               = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#gDay"}
	YearMonth         = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#gYearMonth"}
	Duration          = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#duration"}
	YearMonthDuration = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#yearMonthDuration"}
	DayTimeDuration   = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#dayTimeDuration"}

	// Limited-range integer numbers

	Byte = rdfa.IRI{Value: "http://www.w3.org/2001/XMLSchema#byte"}
)
