package inspect

import (
	"html/template"
	"net/http"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
#tree { border: 1px solid #ccc; padding: 1rem; }
#log { font-family: monospace; font-size: 12px; color: #555; max-height: 20rem; overflow: auto; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="tree">{{.Tree}}</div>
<h2>Mutations</h2>
<pre id="log"></pre>
<script>
(function() {
    'use strict';

    var tree = document.getElementById('tree');
    var log = document.getElementById('log');

    function pathOf(el) {
        var parts = [];
        while (el && el !== tree) {
            parts.unshift(Array.prototype.indexOf.call(el.parentNode.childNodes, el));
            el = el.parentNode;
        }
        return parts.join('/');
    }

    ['click', 'input', 'change'].forEach(function(type) {
        tree.addEventListener(type, function(e) {
            if (e.target === tree) return;
            var q = 'path=' + encodeURIComponent(pathOf(e.target)) + '&event=' + type;
            if (e.target.value !== undefined) q += '&value=' + encodeURIComponent(e.target.value);
            fetch('dispatch?' + q, {method: 'POST'});
        });
    });

    function refresh() {
        fetch('tree').then(function(r) { return r.text(); }).then(function(html) {
            tree.innerHTML = html;
        });
    }

    var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + location.host + location.pathname.replace(/\/$/, '') + '/ws');
    var pending = false;
    ws.onmessage = function(e) {
        log.textContent = e.data + '\n' + log.textContent;
        if (!pending) {
            pending = true;
            setTimeout(function() { pending = false; refresh(); }, 16);
        }
    };
})();
</script>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Title string
		Tree  template.HTML
	}{
		Title: s.title,
		Tree:  template.HTML(s.HTML()),
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("render index failed", "error", err)
	}
}
