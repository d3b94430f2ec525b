package render

// Stylesheet is the CSS the HTML pages link as calendar.css. The class
// colors must stay in sync with calendar.BaseColors, which the partial
// day lightening and the PDF writer read directly.
const Stylesheet = `body {
	font-family: sans-serif;
}

table.calendar caption h1 {
	margin: 0.2em;
}

table.month {
	border-collapse: collapse;
}

table.month th, table.month td {
	width: 2em;
	text-align: center;
}

.workday {
	background-color: #ffffff;
}

.weekend, .holiday {
	background-color: #ff0000;
}

.bereavement {
	background-color: #aaaaff;
}

.floating {
	background-color: #ff9999;
}

.personal {
	background-color: #00ffff;
}

.sick {
	background-color: #ffff00;
}

.unofficial {
	background-color: #3f3fff;
	color: #ffffff;
}

.vacation {
	background-color: #00ff00;
}

.volunteer {
	background-color: #00cccc;
}

.alert {
	color: #ff0000;
	font-weight: bold;
}
`
