package nls

// The sort table mirrors the set of linguistic sorts the platform
// supports. Each Format is the Oracle expression used when upper-casing
// under that sort; Lang is the ISO language code whose casing rules the
// application side applies.
var sorts = []Sort{
	{"ENGLISH", "upper(%s)", "en"},
	{"GERMAN", "nls_upper(%s, 'nls_sort=xgerman')", "de"},
	{"FRENCH", "nls_upper(%s, 'nls_sort=xfrench')", "fr"},
	{"ITALIAN", "nls_upper(%s, 'nls_sort=italian')", "it"},
	{"SPANISH", "nls_upper(%s, 'nls_sort=spanish')", "es"},
	{"CATALAN", "nls_upper(%s, 'nls_sort=catalan')", "ca"},
	{"DUTCH", "nls_upper(%s, 'nls_sort=dutch')", "nl"},
	{"PORTUGUESE", "nls_upper(%s, 'nls_sort=west_european')", "pt"},
	{"DANISH", "nls_upper(%s, 'nls_sort=danish')", "da"},
	{"NORWEGIAN", "nls_upper(%s, 'nls_sort=norwegian')", "no"},
	{"SWEDISH", "nls_upper(%s, 'nls_sort=swedish')", "sv"},
	{"FINNISH", "nls_upper(%s, 'nls_sort=finnish')", "fi"},
	{"CZECH", "nls_upper(%s, 'nls_sort=xczech')", "cs"},
	{"POLISH", "nls_upper(%s, 'nls_sort=polish')", "pl"},
	{"TURKISH", "nls_upper(translate(%s,'i','İ'), 'nls_sort=xturkish')", "tr"},
	{"CHINESE_HK", "nls_upper(to_single_byte(%s), 'nls_sort=tchinese_radical_m')", "zh"},
	{"CHINESE_TW", "nls_upper(to_single_byte(%s), 'nls_sort=tchinese_radical_m')", "zh"},
	{"CHINESE", "nls_upper(to_single_byte(%s), 'nls_sort=schinese_radical_m')", "zh"},
	{"JAPANESE", "nls_upper(to_single_byte(%s), 'nls_sort=japanese_m')", "ja"},
	{"KOREAN", "nls_upper(to_single_byte(%s), 'nls_sort=korean_m')", "ko"},
	{"RUSSIAN", "nls_upper(%s, 'nls_sort=russian')", "ru"},
	{"BULGARIAN", "nls_upper(%s, 'nls_sort=bulgarian')", "bg"},
	{"INDONESIAN", "nls_upper(%s, 'nls_sort=indonesian')", "in"},
	{"ROMANIAN", "nls_upper(%s, 'nls_sort=romanian')", "ro"},
	{"VIETNAMESE", "nls_upper(%s, 'nls_sort=vietnamese')", "vi"},
	{"UKRANIAN", "nls_upper(%s, 'nls_sort=ukrainian')", "uk"},
	{"HUNGARIAN", "nls_upper(%s, 'nls_sort=xhungarian')", "hu"},
	{"GREEK", "nls_upper(%s, 'nls_sort=greek')", "el"},
	{"HEBREW", "nls_upper(%s, 'nls_sort=hebrew')", "iw"},
	{"SLOVAK", "nls_upper(%s, 'nls_sort=slovak')", "sk"},
	{"SERBIAN_CYRILLIC", "nls_upper(%s, 'nls_sort=generic_m')", "sr"},
	{"SERBIAN_LATIN", "nls_upper(%s, 'nls_sort=xcroatian')", "sh"},
	{"BOSNIAN", "nls_upper(%s, 'nls_sort=xcroatian')", "bs"},
	{"GEORGIAN", "nls_upper(%s, 'nls_sort=binary')", "ka"},
	{"BASQUE", "nls_upper(%s, 'nls_sort=west_european')", "eu"},
	{"MALTESE", "nls_upper(%s, 'nls_sort=west_european')", "mt"},
	{"ROMANSH", "nls_upper(%s, 'nls_sort=west_european')", "rm"},
	{"LUXEMBOURGISH", "nls_upper(%s, 'nls_sort=west_european')", "lb"},
	{"IRISH", "nls_upper(%s, 'nls_sort=west_european')", "ga"},
	{"SLOVENE", "nls_upper(%s, 'nls_sort=xslovenian')", "sl"},
	{"CROATIAN", "nls_upper(%s, 'nls_sort=xcroatian')", "hr"},
	{"MALAY", "nls_upper(%s, 'nls_sort=malay')", "ms"},
	{"ARABIC", "nls_upper(%s, 'nls_sort=arabic')", "ar"},
	{"ESTONIAN", "nls_upper(%s, 'nls_sort=estonian')", "et"},
	{"ICELANDIC", "nls_upper(%s, 'nls_sort=icelandic')", "is"},
	{"LATVIAN", "nls_upper(%s, 'nls_sort=latvian')", "lv"},
	{"LITHUANIAN", "nls_upper(%s, 'nls_sort=lithuanian')", "lt"},
	{"KYRGYZ", "nls_upper(%s, 'nls_sort=binary')", "ky"},
	{"KAZAKH", "nls_upper(%s, 'nls_sort=binary')", "kk"},
	{"TAJIK", "nls_upper(%s, 'nls_sort=russian')", "tg"},
	{"BELARUSIAN", "nls_upper(%s, 'nls_sort=russian')", "be"},
	{"TURKMEN", "nls_upper(translate(%s,'i','İ'), 'nls_sort=xturkish')", "tk"},
	{"AZERBAIJANI", "nls_upper(translate(%s,'i','İ'), 'nls_sort=xturkish')", "az"},
	{"ARMENIAN", "nls_upper(%s, 'nls_sort=binary')", "hy"},
	{"THAI", "nls_upper(%s, 'nls_sort=thai_dictionary')", "th"},
	{"HINDI", "nls_upper(%s, 'nls_sort=binary')", "hi"},
	{"URDU", "nls_upper(%s, 'nls_sort=arabic')", "ur"},
	{"BENGALI", "nls_upper(%s, 'nls_sort=bengali')", "bn"},
	{"TAMIL", "nls_upper(%s, 'nls_sort=binary')", "ta"},
	{"ESPERANTO", "upper(%s)", "eo"},

	// Used by formula fields rather than a user-selectable sort.
	{"XWEST_EUROPEAN", "NLS_UPPER(%s,'NLS_SORT=xwest_european')", "en"},
}
