package web

const homePage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>PDF Merger</title></head>
<body>
<h1>PDF Merger</h1>
<ul>
<li><a href="/merge">Merge PDFs into one unlocked PDF</a></li>
<li><a href="/images-to-pdf">Convert images to a single PDF</a></li>
</ul>
</body>
</html>`

const mergePage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Merge PDFs</title></head>
<body>
<h1>Merge PDFs</h1>
<form method="post" action="/merge" enctype="multipart/form-data">
<p><input type="file" name="files" multiple accept="application/pdf"></p>
<p>Shared password (optional): <input type="password" name="shared_password"></p>
<p>Per-file overrides use fields named <code>file_passwords[&lt;filename&gt;]</code>.</p>
<p><button type="submit">Merge</button></p>
</form>
</body>
</html>`

const imagesPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Images to PDF</title></head>
<body>
<h1>Images to PDF</h1>
<form method="post" action="/images-to-pdf" enctype="multipart/form-data">
<p><input type="file" name="images" multiple accept="image/*"></p>
<p><button type="submit">Convert</button></p>
</form>
</body>
</html>`
