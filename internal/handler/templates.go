package handler

import "html/template"

// The splash page advances three ways: a meta refresh (works without
// JS), a script countdown (visible feedback plus location.replace),
// and a plain link for visitors who want out immediately.
const splashHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.Countdown}};url={{.TargetURL}}">
<title>{{.LoadingText}}</title>
</head>
<body>
<main>
<img src="{{.AssetURL}}" alt="">
<p>{{.LoadingText}}</p>
<p>Redirecting in <span id="countdown">{{.Countdown}}</span>s</p>
<p><a href="{{.TargetURL}}" rel="noreferrer">Continue now</a></p>
</main>
<script>
(function () {
	var left = {{.Countdown}};
	var el = document.getElementById("countdown");
	var timer = setInterval(function () {
		left--;
		if (left <= 0) {
			clearInterval(timer);
			window.location.replace({{.TargetURL}});
			return;
		}
		el.textContent = left;
	}, 1000);
})();
</script>
</body>
</html>
`

const challengeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Password required</title>
</head>
<body>
<main>
<h1>This link is password protected</h1>
{{if .Failed}}<p class="error" role="alert">Incorrect password, try again.</p>{{end}}
<form method="post" action="/s/{{.Code}}">
<input type="password" name="password" autofocus required>
<button type="submit">Unlock</button>
</form>
</main>
</body>
</html>
`

var (
	splashTmpl    = template.Must(template.New("splash").Parse(splashHTML))
	challengeTmpl = template.Must(template.New("challenge").Parse(challengeHTML))
)
