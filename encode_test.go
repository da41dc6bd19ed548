package fundflow

import "testing"

func TestDecodeDocument_Tolerance(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, doc Document)
	}{
		{
			name: "current shape",
			data: `{"incomes":[{"id":"a","source":"Salary","amount":1000,"date":"8/31/2026","createdAt":1}],
			        "containers":[],"expenses":[],"clearedTithe":10,"clearedOffering":0,"clearedCharity":0}`,
			check: func(t *testing.T, doc Document) {
				if len(doc.Incomes) != 1 || doc.Incomes[0].Amount != 1000 {
					t.Errorf("incomes = %+v", doc.Incomes)
				}
				if doc.ClearedTithe != 10 {
					t.Errorf("clearedTithe = %v, want 10", doc.ClearedTithe)
				}
			},
		},
		{
			name: "legacy singular income",
			data: `{"income": 500}`,
			check: func(t *testing.T, doc Document) {
				if doc.LegacyIncome == nil || *doc.LegacyIncome != 500 {
					t.Errorf("legacy income not decoded: %+v", doc.LegacyIncome)
				}
			},
		},
		{
			name: "wrong-typed fields fall back to defaults",
			data: `{"incomes": 12, "clearedTithe": "lots", "expenses": null}`,
			check: func(t *testing.T, doc Document) {
				if len(doc.Incomes) != 0 || len(doc.Expenses) != 0 {
					t.Errorf("wrong-typed sequences not coerced: %+v", doc)
				}
				if doc.ClearedTithe != 0 {
					t.Errorf("wrong-typed counter not coerced: %v", doc.ClearedTithe)
				}
			},
		},
		{
			name:    "not an object",
			data:    `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			data:    `garbage`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tc.data))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", tc.data)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, doc)
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Incomes = append(doc.Incomes, Income{ID: "a", Source: "Salary", Amount: 1000, Date: "8/31/2026", CreatedAt: 5})
	doc.ClearedOffering = 25

	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeDocument(data)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Incomes) != 1 || got.Incomes[0] != doc.Incomes[0] {
		t.Errorf("incomes did not round-trip: %+v", got.Incomes)
	}
	if got.ClearedOffering != 25 {
		t.Errorf("clearedOffering = %v, want 25", got.ClearedOffering)
	}
}
