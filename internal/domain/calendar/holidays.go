package calendar

// DefaultHolidays returns the Philippine holiday table for 2024-2026,
// covering both fixed-date and moveable holidays. Loaded once at startup and
// injected; swap it out for other years or jurisdictions.
func DefaultHolidays() Holidays {
	return Holidays{
		// 2024
		"2024-01-01": "New Year's Day",
		"2024-02-10": "Chinese New Year",
		"2024-03-28": "Maundy Thursday",
		"2024-03-29": "Good Friday",
		"2024-03-30": "Black Saturday",
		"2024-04-09": "Araw ng Kagitingan (Day of Valor)",
		"2024-04-10": "Eid al-Fitr",
		"2024-05-01": "Labor Day",
		"2024-06-12": "Independence Day",
		"2024-06-17": "Eid al-Adha",
		"2024-08-26": "National Heroes Day",
		"2024-11-01": "All Saints' Day",
		"2024-11-30": "Bonifacio Day",
		"2024-12-25": "Christmas Day",
		"2024-12-30": "Rizal Day",

		// 2025
		"2025-01-01": "New Year's Day",
		"2025-01-29": "Chinese New Year",
		"2025-03-31": "Eid al-Fitr",
		"2025-04-09": "Araw ng Kagitingan (Day of Valor)",
		"2025-04-17": "Maundy Thursday",
		"2025-04-18": "Good Friday",
		"2025-04-19": "Black Saturday",
		"2025-05-01": "Labor Day",
		"2025-06-07": "Eid al-Adha",
		"2025-06-12": "Independence Day",
		"2025-08-25": "National Heroes Day",
		"2025-11-01": "All Saints' Day",
		"2025-11-30": "Bonifacio Day",
		"2025-12-25": "Christmas Day",
		"2025-12-30": "Rizal Day",

		// 2026
		"2026-01-01": "New Year's Day",
		"2026-02-17": "Chinese New Year",
		"2026-03-20": "Eid al-Fitr",
		"2026-04-02": "Maundy Thursday",
		"2026-04-03": "Good Friday",
		"2026-04-04": "Black Saturday",
		"2026-04-09": "Araw ng Kagitingan (Day of Valor)",
		"2026-05-01": "Labor Day",
		"2026-05-27": "Eid al-Adha",
		"2026-06-12": "Independence Day",
		"2026-08-31": "National Heroes Day",
		"2026-11-01": "All Saints' Day",
		"2026-11-30": "Bonifacio Day",
		"2026-12-25": "Christmas Day",
		"2026-12-30": "Rizal Day",
	}
}
