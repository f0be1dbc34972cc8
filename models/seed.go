package models

// DefaultQuotation returns the example document a fresh session opens
// with: one 10KW grid-connected solar EPC line at 9% + 9% GST.
func DefaultQuotation() *Quotation {
	return &Quotation{
		QuoteNo:    "100117",
		Date:       "23/02/2026",
		ExpiryDate: "25/03/2026",
		Issuer: Issuer{
			Name:    "SAI SOLAREDGE SOLUTIONS",
			Address: "2ND FLOOR, H.NO 8-6-1074/67, Road Number 9, Sri Venkataramana Colony, Karmanghat, K.V.Rangareddy, Telangana, 500070",
			Mobile:  "6302973009",
			GSTIN:   "36AFVFS0700F1ZZ",
			PAN:     "AFVFS0700F",
			Email:   "connectwithus@saisolaredgesolutions.in",
			Website: "www.saisolaredgesolutions.in",
		},
		BillTo: Party{
			Name:          "Ashok Kumar",
			Address:       "Plot No: 72, Hema Nagar, Uppal, Hyderabad, Telangana, 500092",
			Mobile:        "8106998543",
			PlaceOfSupply: "Telangana",
		},
		ShipTo: Party{
			Name:    "Ashok Kumar",
			Address: "Plot No: 72, Hema Nagar, Uppal, Hyderabad, Telangana, 500092",
		},
		Items: []LineItem{
			{
				Description: "10KW GRID CONNECTED SOLAR PV (NDCR) AS PER SCOPE DESIGNING, ENGINEERING, INSTALLATION & COMMISSIONING (EPC)",
				Qty:         "1 PCS",
				TaxLabel:    "56,181.36 (18%)",
				Amount:      "368300",
			},
		},
		Summary: Summary{
			TaxableAmount: "3,12,118.64",
			CGSTLabel:     "CGST @9%",
			CGST:          "28,090.68",
			SGSTLabel:     "SGST @9%",
			SGST:          "28,090.68",
			Total:         "3,68,300",
			AmountInWords: "Three Lakh Sixty Eight Thousand Three Hundred Rupees Only",
		},
		Bank: BankDetails{
			AccountName: "Sai SolarEdge Solutions",
			IFSC:        "TGRB0000183",
			AccountNo:   "79104527499",
			BankName:    "TELANGANA GRAMEENA BANK, HASTINAPURAM, Hyderabad, Telangana",
		},
		Terms: []string{
			"Goods once sold will not be taken back or exchanged",
			"All disputes are subject to Hyderabad jurisdiction only",
			"Initial 10% Documentation charges for site visit as well as Customer registration",
			"60% Payment to be made against invoice once agreed. Remaining 30% to be made after completion of Solar installation",
			"Payment received before 2 pm into our account will be considered for dispatch on same day",
			"Warranty - Standard warranty policies of the Manufacturer are applicable.",
		},
	}
}
