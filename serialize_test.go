package rdfa

import "testing"

func TestSerializeNTriples(t *testing.T) {
	tests := []struct {
		name  string
		stmts []Statement
		want  string
	}{
		{
			name: "plain-iri-object",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: IRI{Value: "http://ex/o"}},
			},
			want: "<http://ex/s> <http://ex/p> <http://ex/o> .\n",
		},
		{
			name: "plain-literal",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("hello")},
			},
			want: "<http://ex/s> <http://ex/p> \"hello\" .\n",
		},
		{
			name: "lang-literal",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("bonjour").WithLang("fr")},
			},
			want: "<http://ex/s> <http://ex/p> \"bonjour\"@fr .\n",
		},
		{
			name: "datatype-literal-xsd-string-suppressed",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("hi").WithDatatype(nodeXSDString)},
			},
			want: "<http://ex/s> <http://ex/p> \"hi\" .\n",
		},
		{
			name: "datatype-literal-explicit",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("42").WithDatatype(IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"})},
			},
			want: "<http://ex/s> <http://ex/p> \"42\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n",
		},
		{
			name: "escaped-quote",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("a \"quote\"")},
			},
			want: "<http://ex/s> <http://ex/p> \"a \\\"quote\\\"\" .\n",
		},
		{
			name: "control-char-triple-quoted",
			stmts: []Statement{
				{Subject: IRI{Value: "http://ex/s"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("a \"quote\"\nand newline")},
			},
			want: "<http://ex/s> <http://ex/p> \"\"\"a \"quote\"\nand newline\"\"\" .\n",
		},
		{
			name: "blank-renders-as-well-known-iri",
			stmts: []Statement{
				{Subject: Blank{ID: 3}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("v")},
			},
			want: "<http://data.lblod.info/.well-known/genid#3> <http://ex/p> \"v\" .\n",
		},
		{
			name: "refblank-renders-as-well-known-iri",
			stmts: []Statement{
				{Subject: RefBlank{Label: "a"}, Predicate: IRI{Value: "http://ex/p"}, Object: NewLiteral("v")},
			},
			want: "<http://data.lblod.info/.well-known/genid#a> <http://ex/p> \"v\" .\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SerializeNTriples(tt.stmts, ""); got != tt.want {
				t.Errorf("SerializeNTriples() = %q; want %q", got, tt.want)
			}
		})
	}
}
