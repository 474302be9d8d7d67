package handlers

const tmplPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Fraud Detection System</title>
<style>
body{font-family:system-ui,sans-serif;background:#0f172a;color:#e2e8f0;margin:0;padding:24px}
h1{margin:0 0 4px}
.sub{color:#94a3b8;margin:0 0 24px}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:16px}
.card{background:#1e293b;border-radius:10px;padding:16px}
.bar{background:#334155;border-radius:99px;height:8px;margin-top:8px}
.bar>div{height:8px;border-radius:99px}
.tabs{display:flex;gap:8px;margin:24px 0 16px}
.tabs button{background:#1e293b;color:#e2e8f0;border:0;padding:8px 16px;border-radius:6px;cursor:pointer}
.tabs button.on{background:#6366f1}
.tab{display:none}.tab.on{display:block}
.badge{display:inline-block;padding:2px 8px;border-radius:99px;font-size:12px;color:#0f172a}
.row{display:flex;justify-content:space-between;align-items:center;padding:10px;border-bottom:1px solid #334155}
.muted{color:#94a3b8;font-size:13px}
button.act{background:#334155;color:#e2e8f0;border:0;padding:4px 10px;border-radius:4px;margin-left:6px;cursor:pointer}
</style>
</head>
<body>
<h1>Fraud Detection System</h1>
<p class="sub">Advanced ML-powered credit card fraud detection and prevention</p>

<div class="grid">
{{range .Catalog.Overview.AlertStats}}
  <div class="card">
    <div class="muted">{{.Label}}</div>
    <div style="font-size:24px;font-weight:700;color:{{toneColor .Tone}}">{{num .Value}}{{.Suffix}}</div>
    <div class="bar"><div style="width:{{pct .Progress}}%;background:{{toneColor .Tone}}"></div></div>
  </div>
{{end}}
</div>

<div class="tabs">
  <button data-tab="monitor" class="on">Live Monitor</button>
  <button data-tab="metrics">Model Metrics</button>
  <button data-tab="analysis">Risk Analysis</button>
  <button data-tab="compliance">Compliance</button>
</div>

<section id="monitor" class="tab on">
  <div class="grid" style="grid-template-columns:2fr 1fr">
    <div class="card">
      <h3>Live Transaction Stream</h3>
      <div id="feed" class="muted">connecting…</div>
    </div>
    <div class="card">
      <h3>Risk Distribution</h3>
      {{range .Catalog.Overview.RiskDistribution}}
        <div class="row"><span>{{.Label}}</span><span style="color:{{toneColor .Tone}}">{{.Count}}</span></div>
        <div class="bar"><div style="width:{{pct .Percent}}%;background:{{toneColor .Tone}}"></div></div>
      {{end}}
      <h3>Alert Actions</h3>
      {{range .Catalog.Overview.AlertActions}}<div class="row">{{.}}</div>{{end}}
    </div>
  </div>
</section>

<section id="metrics" class="tab">
  <div class="grid">
  {{range .Catalog.ModelMetrics.Performance}}
    <div class="card">
      <div class="muted">{{.Metric}}</div>
      <div style="font-size:20px">{{num .Value}}%{{if .Unit}} {{.Unit}}{{end}}</div>
      <span class="badge" style="background:{{toneColor .Status.Tone}}">{{.Status}}</span>
      <div class="muted">Target {{num .Target}}% · {{verdict .}}</div>
    </div>
  {{end}}
  </div>
  <div class="card" style="margin-top:16px">
    <h3>Model Versions</h3>
    {{range .Catalog.ModelMetrics.Versions}}
      <div class="row"><span>{{.Version}} <span class="muted">Deployed: {{.DeployedAt}}</span></span>
      <span><span class="badge" style="background:{{toneColor .Status.Tone}}">{{.Status}}</span> {{num .Accuracy}}% accuracy</span></div>
    {{end}}
  </div>
  <div class="grid" style="margin-top:16px">
    <div class="card"><h3>Training Progress</h3>
    {{range .Catalog.ModelMetrics.Training}}
      <div class="row"><span>{{.Label}}</span><span>{{.Display}}</span></div>
      <div class="bar"><div style="width:{{pct .Percent}}%;background:#6366f1"></div></div>
    {{end}}
    {{range .Catalog.ModelMetrics.TrainingKPI}}<div class="row"><span class="muted">{{.Label}}</span><b>{{.Value}}</b></div>{{end}}
    <button class="act" data-post="/api/model/retrain">Retrain Model</button>
    </div>
    <div class="card"><h3>Real-time Monitoring</h3>
    {{range .Catalog.ModelMetrics.LiveKPI}}<div class="row"><span class="muted">{{.Label}}</span><b>{{.Value}}</b></div>{{end}}
    {{range .Catalog.ModelMetrics.Monitoring}}
      <div class="row"><span>{{.Label}}</span><span>{{.Display}}</span></div>
      <div class="bar"><div style="width:{{pct .Percent}}%;background:#10b981"></div></div>
    {{end}}
    </div>
  </div>
</section>

<section id="analysis" class="tab">
  <div class="card"><h3>Risk Factor Analysis</h3>
  {{range .Catalog.RiskAnalysis.Factors}}
    <div class="row"><span>{{.Factor}} <span class="muted">{{.Description}}</span></span>
    <span style="color:{{toneColor .Impact.Tone}}">{{.Impact}} impact · {{num .Weight}}%</span></div>
  {{end}}
  </div>
  <div class="grid" style="margin-top:16px">
    <div class="card"><h3>Geographic Risk</h3>
    {{range .Catalog.RiskAnalysis.Geographic}}
      <div class="row"><span>{{.Region}} <span class="muted">{{.Incidents}} incidents reported</span></span>
      <span style="color:{{toneColor .Trend.Tone}}">{{.Trend}} · {{num .RiskLevel}}%</span></div>
    {{end}}
    </div>
    <div class="card"><h3>Merchant Risk Categories</h3>
    {{range .Catalog.RiskAnalysis.Merchants}}
      <div class="row"><span>{{.Category}} <span class="muted">Volume: {{.Volume}} · {{num .Chargebacks}}% chargeback rate</span></span>
      <span>{{num .RiskScore}}</span></div>
    {{end}}
    </div>
    <div class="card"><h3>Model Confidence</h3>
    {{range .Catalog.RiskAnalysis.ConfidenceBands}}
      <div class="row"><span>{{.Label}}</span><span>{{.Display}}</span></div>
    {{end}}
    </div>
  </div>
</section>

<section id="compliance" class="tab">
  <div class="grid">
  {{range .Catalog.Compliance.Reporting}}
    <div class="card"><div class="muted">{{.Metric}}</div><div style="font-size:20px">{{num .Value}}{{.Suffix}}</div><div class="muted">{{.Period}}</div></div>
  {{end}}
  </div>
  <div class="grid" style="margin-top:16px">
    <div class="card"><h3>Compliance Standards</h3>
    {{range .Catalog.Compliance.Standards}}
      <div class="row"><span>{{.Standard}} <span class="muted">{{.Met}}/{{.Requirements}} requirements met · next audit {{.NextAudit}}</span></span>
      <span class="badge" style="background:{{toneColor .Status.Tone}}">{{.Status}} {{num .Score}}%</span></div>
      <div class="bar"><div style="width:{{pct (reqPct .)}}%;background:{{toneColor .Status.Tone}}"></div></div>
    {{end}}
    </div>
    <div class="card"><h3>Audit Findings</h3>
    {{range .Catalog.Compliance.Findings}}
      <div class="row"><span>{{.ID}} <b style="color:{{toneColor .Severity.Tone}}">{{.Severity}}</b> {{.Category}}<br><span class="muted">{{.Description}} · Due: {{.DueDate}}</span></span>
      <span class="badge" style="background:{{toneColor .Status.Tone}}">{{.Status}}</span></div>
    {{end}}
    </div>
  </div>
  <div class="card" style="margin-top:16px"><h3>Reporting &amp; Documentation</h3>
  {{range .Catalog.Compliance.Reports}}<button class="act" data-post="/api/reports/{{.}}">{{.Title}}</button>{{end}}
  <p class="muted">Daily: {{range $i, $r := .Catalog.Compliance.Schedule.Daily}}{{if $i}}, {{end}}{{$r}}{{end}}</p>
  <p class="muted">Monthly: {{range $i, $r := .Catalog.Compliance.Schedule.Monthly}}{{if $i}}, {{end}}{{$r}}{{end}}</p>
  </div>
</section>

<script>
const tones = {{.Tones}};
let ws = null, rows = [], capacity = 20;

function row(t) {
  const acts = t.reviewable
    ? '<button class="act" data-post="/api/transactions/' + t.id + '/review">Review</button>' +
      '<button class="act" data-post="/api/transactions/' + t.id + '/block">Block</button>'
    : '';
  return '<div class="row"><span><b>$' + t.amount.toLocaleString() + '</b> ' + t.merchant +
    '<br><span class="muted">' + t.card_number + ' · ' + t.location + ' · ' +
    new Date(t.timestamp).toLocaleTimeString() + '</span></span><span>' +
    '<span class="badge" style="background:' + tones[t.tone] + '">' + t.badge +
    ' (' + t.risk_score.toFixed(1) + '%)</span>' + acts + '</span></div>';
}

function draw() {
  document.getElementById('feed').innerHTML = rows.map(row).join('');
}

function openFeed() {
  if (ws) return;
  const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  ws = new WebSocket(proto + location.host + '/api/feed/ws');
  ws.onmessage = (e) => {
    const m = JSON.parse(e.data);
    if (m.type === 'snapshot') {
      capacity = m.capacity;
      rows = m.records || [];
    } else if (m.type === 'record' && !rows.some(r => r.id === m.record.id)) {
      rows = [m.record].concat(rows).slice(0, capacity);
    }
    draw();
  };
  ws.onclose = () => { ws = null; };
}

function closeFeed() {
  if (ws) { ws.close(); ws = null; }
}

document.querySelectorAll('.tabs button').forEach(b => b.onclick = () => {
  document.querySelectorAll('.tabs button').forEach(x => x.classList.toggle('on', x === b));
  document.querySelectorAll('.tab').forEach(s => s.classList.toggle('on', s.id === b.dataset.tab));
  if (b.dataset.tab === 'monitor') { openFeed(); } else { closeFeed(); }
});

document.addEventListener('click', (e) => {
  const url = e.target.dataset && e.target.dataset.post;
  if (url) fetch(url, {method: 'POST'});
});

window.addEventListener('pagehide', closeFeed);
openFeed();
</script>
</body>
</html>
`
